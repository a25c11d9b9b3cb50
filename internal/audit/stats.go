package audit

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NoExtension labels records whose filename carries no extension in
// breakdowns and reports.
const NoExtension = "(no extension)"

// Summary holds aggregate statistics for one record set.
type Summary struct {
	// TotalFiles is the number of records included.
	TotalFiles int `json:"total_files"`
	// TotalSizeKB is the cumulative size of all records.
	TotalSizeKB float64 `json:"total_size_kb"`
	// AverageSizeKB is TotalSizeKB / TotalFiles, or 0 for an empty set.
	AverageSizeKB float64 `json:"average_size_kb"`
	// MedianSizeKB is the median of the strictly positive sizes, or 0
	// when no record has a positive size.
	MedianSizeKB float64 `json:"median_size_kb"`
}

// ExtStat represents accumulated statistics for a file extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int `json:"count"`
	// SizeKB is the cumulative size in KB.
	SizeKB float64 `json:"size_kb"`
}

// Summarize computes summary statistics over records.
//
// Zero-sized records count towards TotalFiles and TotalSizeKB but are
// excluded from the median input set.
func Summarize(records []Record) Summary {
	sizes := make([]float64, len(records))
	positive := make([]float64, 0, len(records))

	for i, rec := range records {
		sizes[i] = rec.SizeKB
		if rec.SizeKB > 0 {
			positive = append(positive, rec.SizeKB)
		}
	}

	summary := Summary{
		TotalFiles:   len(records),
		TotalSizeKB:  floats.Sum(sizes),
		MedianSizeKB: median(positive),
	}

	if summary.TotalFiles > 0 {
		summary.AverageSizeKB = stat.Mean(sizes, nil)
	}

	return summary
}

// median returns the statistical median of values, or 0 for an empty
// input. For an even count it averages the two middle values.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // Midpoint of the two central values
}

// Breakdown groups records by extension and accumulates per-extension
// count and cumulative size. Records without an extension are grouped
// under NoExtension.
func Breakdown(records []Record) map[string]ExtStat {
	stats := make(map[string]ExtStat)

	for _, rec := range records {
		ext := rec.Extension
		if ext == "" {
			ext = NoExtension
		}

		entry := stats[ext]
		entry.Count++
		entry.SizeKB += rec.SizeKB
		stats[ext] = entry
	}

	return stats
}

// Extensions returns the breakdown keys in lexicographic order for
// presentation.
func Extensions(breakdown map[string]ExtStat) []string {
	exts := make([]string, 0, len(breakdown))
	for ext := range breakdown {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}
