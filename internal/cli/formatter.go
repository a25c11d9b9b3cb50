package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/idelchi/folderaudit/internal/audit"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// KBPerMB converts KB totals to MB for the breakdown table.
	KBPerMB = 1024
)

// PrintSummary outputs the summary block in human-readable form.
func PrintSummary(writer io.Writer, summary audit.Summary) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nSummary:\t")
	fmt.Fprintf(w, "Files included:\t%d\n", summary.TotalFiles)
	fmt.Fprintf(w, "Total size:\t%.2f KB\n", summary.TotalSizeKB)
	fmt.Fprintf(w, "Average file size:\t%.2f KB\n", summary.AverageSizeKB)
	fmt.Fprintf(w, "Median file size:\t%.2f KB\n", summary.MedianSizeKB)

	return w.Flush()
}

// PrintBreakdown outputs the per-extension table, sizes in MB, in
// lexicographic extension order.
func PrintBreakdown(writer io.Writer, breakdown map[string]audit.ExtStat) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nFile type breakdown:\t\t")

	for _, ext := range audit.Extensions(breakdown) {
		entry := breakdown[ext]
		fmt.Fprintf(w, "  %s\t%d files\t%.2f MB\n", ext, entry.Count, entry.SizeKB/KBPerMB)
	}

	return w.Flush()
}

// PrintDuplicates outputs one listing per group: the key as a header
// line, then one line per member with path and size.
func PrintDuplicates(writer io.Writer, groups []audit.Group, mode audit.Mode) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintf(writer, "\nNo duplicates found by %s.\n", mode)

		return err
	}

	if _, err := fmt.Fprintf(writer, "\nDuplicate candidates by %s:\n", mode); err != nil {
		return err
	}

	for _, group := range groups {
		fmt.Fprintf(writer, "\nMatch %s:\n", group.Key)

		for _, rec := range group.Records {
			fmt.Fprintf(writer, "  - %s (%.2f KB)\n", rec.FullPath, rec.SizeKB)
		}
	}

	return nil
}
