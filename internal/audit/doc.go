// Package audit provides directory inventory and classification.
//
// It walks a directory tree, extracts per-file metadata records,
// aggregates statistics by extension, and partitions records into
// candidate-duplicate groups using size-bucket or case-insensitive
// name heuristics.
package audit
