package audit_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/folderaudit/internal/audit"
)

func TestExtensionOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"report.pdf", ".pdf"},
		{"Report.PDF", ".pdf"},
		{"report.pdf.bak", ".bak"},
		{"archive.tar.gz", ".gz"},
		{"README", ""},
		{".bashrc", ""},
		{"..config", ""},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, audit.ExtensionOf(tc.name), "name %q", tc.name)
	}
}

// Round2 rounds half away from zero, not half to even. This convention
// also drives the size-bucket grouping key, so it is pinned here.
func TestRound2HalfAwayFromZero(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.13, audit.Round2(0.125), 1e-9)
	assert.InDelta(t, 0.63, audit.Round2(0.625), 1e-9)
	assert.InDelta(t, -0.13, audit.Round2(-0.125), 1e-9)
	assert.InDelta(t, 1.0, audit.Round2(1.0), 1e-9)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Sample.TXT")
	require.NoError(t, os.WriteFile(path, make([]byte, 2048), 0o644))

	rec, err := audit.Extract(path)
	require.NoError(t, err)

	assert.Equal(t, "Sample.TXT", rec.Filename)
	assert.Equal(t, path, rec.FullPath)
	assert.Equal(t, ".txt", rec.Extension)
	assert.InDelta(t, 2.0, rec.SizeKB, 1e-9)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime().Format(audit.TimeFormat), rec.LastModified)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), rec.LastModified)
}

func TestExtractInaccessible(t *testing.T) {
	t.Parallel()

	_, err := audit.Extract(filepath.Join(t.TempDir(), "gone.txt"))
	require.ErrorIs(t, err, audit.ErrInaccessible)
}
