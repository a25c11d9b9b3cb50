package audit

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Mode selects the duplicate-grouping heuristic.
type Mode string

const (
	// BySize buckets files whose sizes fall in the same ~2KB-wide band
	// and that share an extension.
	BySize Mode = "size"
	// ByName groups files whose full names match case-insensitively,
	// extension included.
	ByName Mode = "name"
)

// ErrInvalidMode indicates an unrecognized duplicate-grouping mode.
var ErrInvalidMode = errors.New(`mode must be either "size" or "name"`)

// Group is one candidate-duplicate bucket: two or more records sharing
// a grouping key. Members keep the input record order.
//
// Key is the stable textual rendering used in reports: "(N, .ext)" for
// size mode, where N is SizeKB/2 rounded half away from zero, and the
// lower-cased filename for name mode.
type Group struct {
	Key     string   `json:"key"`
	Records []Record `json:"records"`
}

// groupKey renders the grouping key for a record under mode.
//
// The size heuristic is deliberately loose: files differing by up to
// ~4KB can land in the same bucket, and near-identical sizes straddling
// a bucket boundary can split. That is accepted behavior, not exact
// duplicate detection.
func groupKey(rec Record, mode Mode) string {
	if mode == BySize {
		return fmt.Sprintf("(%d, %s)", int64(math.Round(rec.SizeKB/2)), strings.ToLower(rec.Extension)) //nolint:mnd // Half-KB bucket
	}

	return strings.ToLower(rec.Filename)
}

// GroupDuplicates partitions records into candidate-duplicate groups
// under the given mode.
//
// Groups appear in order of their first member; only groups with at
// least two members are returned. An unrecognized mode returns
// ErrInvalidMode.
func GroupDuplicates(records []Record, mode Mode) ([]Group, error) {
	switch mode {
	case BySize, ByName:
	default:
		return nil, fmt.Errorf("%w, got %q", ErrInvalidMode, mode)
	}

	index := make(map[string]int)
	buckets := make([]Group, 0)

	for _, rec := range records {
		key := groupKey(rec, mode)

		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, Group{Key: key})
		}

		buckets[pos].Records = append(buckets[pos].Records, rec)
	}

	// Only keep groups with duplicates
	groups := make([]Group, 0, len(buckets))

	for _, group := range buckets {
		if len(group.Records) >= 2 {
			groups = append(groups, group)
		}
	}

	return groups, nil
}
