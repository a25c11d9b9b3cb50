package audit

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TimeFormat is the fixed layout used for the LastModified field.
const TimeFormat = time.DateTime

// ErrInaccessible marks files that vanished or became unreadable between
// directory enumeration and inspection. The scanner skips such files and
// continues.
var ErrInaccessible = errors.New("file inaccessible")

// Record holds the metadata captured for a single audited file.
type Record struct {
	// Filename is the base name, extension included.
	Filename string `json:"filename"`
	// FullPath is the traversal path of the file; unique within one scan.
	FullPath string `json:"full_path"`
	// Extension is lower-cased and includes the leading dot, or is empty.
	Extension string `json:"extension"`
	// SizeKB is the file size in KB, rounded to two decimals at creation.
	SizeKB float64 `json:"size_kb"`
	// LastModified is the modification time rendered with TimeFormat.
	LastModified string `json:"last_modified"`
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100 //nolint:mnd // Two decimal places
}

// ExtensionOf returns the lower-cased extension of name, leading dot
// included. Leading dots are not extension separators, so names like
// ".bashrc" report no extension.
func ExtensionOf(name string) string {
	trimmed := strings.TrimLeft(name, ".")

	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return ""
	}

	return strings.ToLower(trimmed[idx:])
}

// Extract stats path and builds a Record from its metadata.
// It returns an error wrapping ErrInaccessible when the file no longer
// exists or permission is denied at the moment of inspection.
func Extract(path string) (Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
			return Record{}, fmt.Errorf("%w: %s", ErrInaccessible, path)
		}

		return Record{}, fmt.Errorf("inspecting %q: %w", path, err)
	}

	name := filepath.Base(path)

	return Record{
		Filename:     name,
		FullPath:     path,
		Extension:    ExtensionOf(name),
		SizeKB:       Round2(float64(info.Size()) / 1024), //nolint:mnd // Bytes per KB
		LastModified: info.ModTime().Format(TimeFormat),
	}, nil
}
