package audit

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"
)

const (
	// DefaultMinSizeKB is the default inclusive lower bound on file size.
	DefaultMinSizeKB = 10

	// DefaultProgressInterval is the default interval for progress updates.
	DefaultProgressInterval = 500 * time.Millisecond
)

// Options configures a scan.
type Options struct {
	// Root is the directory to audit.
	Root string
	// Recursive indicates whether to descend into subdirectories.
	Recursive bool
	// MinSizeKB is the inclusive minimum size in KB; smaller files are
	// never materialized into records.
	MinSizeKB float64
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// Scanner walks a directory tree and collects file records.
type Scanner struct {
	opts Options
	log  zerolog.Logger
}

// NewScanner creates a Scanner with the given options and logger.
func NewScanner(opts Options, log zerolog.Logger) *Scanner {
	return &Scanner{opts: opts, log: log}
}

// collector accumulates records during a walk. The mutex guards access
// from the progress reporter goroutine running alongside the walk.
type collector struct {
	mu        sync.Mutex
	records   []Record
	fileCount int64
	totalKB   float64
	skipped   int64
}

// add appends a record and updates the running counters.
func (c *collector) add(rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, rec)
	c.fileCount++
	c.totalKB += rec.SizeKB
}

// addSkipped counts a file dropped because it could not be inspected.
func (c *collector) addSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.skipped++
}

// snapshot returns the current file count and cumulative size in KB.
func (c *collector) snapshot() (int64, float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalKB
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// startProgressReporter invokes hook(files, totalKB) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, float64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, totalKB := c.snapshot()
				hook(files, totalKB)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Scan traverses the tree rooted at the configured path and returns the
// qualifying records in traversal order.
//
// Files smaller than MinSizeKB are dropped before a record is created.
// Files that cannot be inspected (vanished or permission denied between
// enumeration and stat) are skipped without aborting the scan. A root
// that does not exist or is not a directory yields an empty result and
// no error; callers wanting a loud failure must validate the root first.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func (s *Scanner) Scan(ctx context.Context, progressHook func(int64, float64)) ([]Record, error) {
	opts := s.opts
	if opts.Root == "" {
		opts.Root = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opts.Root = filepath.Clean(opts.Root)

	if info, err := os.Stat(opts.Root); err != nil || !info.IsDir() {
		s.log.Warn().Str("root", opts.Root).Msg("root unavailable, returning empty result")

		return []Record{}, nil
	}

	collector := &collector{}

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, collector, progressHook, opts.ProgressInterval)

	// A single worker with sorted entries keeps the walk sequential and
	// the record order deterministic.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
		Sort:       fastwalk.SortLexical,
	}

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Debug().Err(err).Str("path", path).Msg("skipping inaccessible path")
			collector.addSkipped()

			return nil // Silently skip errors
		}

		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			if !opts.Recursive && calculateDepth(path, opts.Root) >= 1 {
				return filepath.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rec, err := Extract(path)
		if err != nil {
			if errors.Is(err, ErrInaccessible) {
				s.log.Debug().Str("path", path).Msg("file vanished or unreadable, skipping")
			} else {
				s.log.Warn().Err(err).Str("path", path).Msg("skipping file")
			}

			collector.addSkipped()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if rec.SizeKB < opts.MinSizeKB {
			return nil
		}

		collector.add(rec)

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	if collector.skipped > 0 {
		s.log.Debug().Int64("skipped", collector.skipped).Msg("files skipped during scan")
	}

	if collector.records == nil {
		return []Record{}, nil
	}

	return collector.records, nil
}
