// Package report renders audit results as tabular CSV files.
//
// Writers flush and close on all exit paths; an empty input still
// produces a valid header-only file. A write failure may leave a
// truncated file behind, no cleanup is attempted.
package report

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/idelchi/folderaudit/internal/audit"
)

// recordHeader is the column set of the primary report.
var recordHeader = []string{"Filename", "Full Path", "Extension", "Size (KB)", "Last Modified"} //nolint:gochecknoglobals // Schema constant

// duplicateHeader is the column set of the duplicate reports.
var duplicateHeader = []string{"Duplicate Group", "Filename", "Full_Path", "Extension", "Size (KB)", "Last Modified"} //nolint:gochecknoglobals // Schema constant

// formatSizeKB renders a size with exactly two decimal places.
func formatSizeKB(sizeKB float64) string {
	return fmt.Sprintf("%.2f", sizeKB)
}

// WriteRecords writes the primary report, one row per record.
func WriteRecords(path string, records []audit.Record) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %q: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report %q: %w", path, closeErr)
		}
	}()

	writer := csv.NewWriter(file)

	if err := writer.Write(recordHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	for _, rec := range records {
		row := []string{rec.Filename, rec.FullPath, rec.Extension, formatSizeKB(rec.SizeKB), rec.LastModified}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing report row for %q: %w", rec.FullPath, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing report %q: %w", path, err)
	}

	return nil
}

// WriteDuplicates writes a duplicate report, one row per (group, member)
// pair. The group key column carries the stable rendering documented on
// audit.Group.
func WriteDuplicates(path string, groups []audit.Group) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %q: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing report %q: %w", path, closeErr)
		}
	}()

	writer := csv.NewWriter(file)

	if err := writer.Write(duplicateHeader); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}

	for _, group := range groups {
		for _, rec := range group.Records {
			row := []string{group.Key, rec.Filename, rec.FullPath, rec.Extension, formatSizeKB(rec.SizeKB), rec.LastModified}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("writing report row for %q: %w", rec.FullPath, err)
			}
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing report %q: %w", path, err)
	}

	return nil
}
