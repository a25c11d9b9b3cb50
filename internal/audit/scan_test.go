package audit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/folderaudit/internal/audit"
)

// writeSized creates a file of size KB at path, creating parents as needed.
func writeSized(t *testing.T, path string, sizeKB int) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, sizeKB*1024), 0o644))
}

func scan(t *testing.T, opts audit.Options) []audit.Record {
	t.Helper()

	records, err := audit.NewScanner(opts, zerolog.Nop()).Scan(context.Background(), nil)
	require.NoError(t, err)

	return records
}

func TestScanMinSizeFilter(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSized(t, filepath.Join(root, "small.txt"), 5)
	writeSized(t, filepath.Join(root, "large.txt"), 20)

	records := scan(t, audit.Options{Root: root, Recursive: true, MinSizeKB: 10})

	require.Len(t, records, 1)
	assert.Equal(t, "large.txt", records[0].Filename)
	assert.InDelta(t, 20.0, records[0].SizeKB, 1e-9)

	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.SizeKB, 10.0)
	}

	summary := audit.Summarize(records)
	assert.Equal(t, 1, summary.TotalFiles)
	assert.InDelta(t, 20.0, summary.AverageSizeKB, 1e-9)
	assert.InDelta(t, 20.0, summary.MedianSizeKB, 1e-9)
}

func TestScanNonRecursive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSized(t, filepath.Join(root, "top.txt"), 12)
	writeSized(t, filepath.Join(root, "sub", "nested.txt"), 12)

	records := scan(t, audit.Options{Root: root, Recursive: false, MinSizeKB: 10})

	require.Len(t, records, 1)
	assert.Equal(t, "top.txt", records[0].Filename)
}

func TestScanRecursive(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSized(t, filepath.Join(root, "top.txt"), 12)
	writeSized(t, filepath.Join(root, "sub", "nested.txt"), 12)
	writeSized(t, filepath.Join(root, "sub", "deeper", "leaf.txt"), 12)

	records := scan(t, audit.Options{Root: root, Recursive: true, MinSizeKB: 10})

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Filename)
	}

	assert.ElementsMatch(t, []string{"top.txt", "nested.txt", "leaf.txt"}, names)
}

func TestScanMissingRootIsEmpty(t *testing.T) {
	t.Parallel()

	records := scan(t, audit.Options{
		Root:      filepath.Join(t.TempDir(), "does-not-exist"),
		Recursive: true,
	})

	assert.Empty(t, records)
}

func TestScanEmptyTree(t *testing.T) {
	t.Parallel()

	records := scan(t, audit.Options{Root: t.TempDir(), Recursive: true, MinSizeKB: 10})

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestScanExtensionFromFilename(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSized(t, filepath.Join(root, "Mixed.Case.PDF"), 12)
	writeSized(t, filepath.Join(root, "noext"), 12)

	records := scan(t, audit.Options{Root: root, Recursive: true, MinSizeKB: 10})
	require.Len(t, records, 2)

	byName := make(map[string]audit.Record, len(records))
	for _, rec := range records {
		byName[rec.Filename] = rec
	}

	assert.Equal(t, ".pdf", byName["Mixed.Case.PDF"].Extension)
	assert.Equal(t, "", byName["noext"].Extension)
}
