package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/idelchi/folderaudit/internal/audit"
	"github.com/idelchi/folderaudit/internal/report"
)

// run performs one audit: scan, aggregate, group, print, persist.
//
// Console output comes first, then the CSV reports in fixed order:
// primary, duplicates by size, duplicates by name. The first failed
// write aborts the remaining reports; completed output stands.
//
//nolint:forbidigo,funlen // Console output is the tool's interface
func run(ctx context.Context, set settings) error {
	level := zerolog.InfoLevel
	if set.debug {
		level = zerolog.DebugLevel
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	// Validate the root up front so typos fail loudly; the scanner itself
	// treats a missing root as an empty result.
	if info, err := os.Stat(set.root); err != nil {
		return fmt.Errorf("accessing path %q: %w", set.root, err)
	} else if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", set.root)
	}

	enableProgress := !set.debug && isatty.IsTerminal(os.Stderr.Fd())

	var progressHook func(files int64, totalKB float64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files int64, totalKB float64) {
			msg := fmt.Sprintf("Scanning… %d files, %s",
				files, humanize.IBytes(uint64(totalKB*1024))) //nolint:gosec // Size is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	fmt.Println("Starting folder audit...")

	scanner := audit.NewScanner(audit.Options{
		Root:      set.root,
		Recursive: set.recursive,
		MinSizeKB: set.minSizeKB,
	}, log)

	records, err := scanner.Scan(ctx, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if err := PrintSummary(os.Stdout, audit.Summarize(records)); err != nil {
		return err
	}

	if err := PrintBreakdown(os.Stdout, audit.Breakdown(records)); err != nil {
		return err
	}

	bySize, err := audit.GroupDuplicates(records, audit.BySize)
	if err != nil {
		return err
	}

	if err := PrintDuplicates(os.Stdout, bySize, audit.BySize); err != nil {
		return err
	}

	byName, err := audit.GroupDuplicates(records, audit.ByName)
	if err != nil {
		return err
	}

	if err := PrintDuplicates(os.Stdout, byName, audit.ByName); err != nil {
		return err
	}

	primary := set.outputPrefix + ".csv"
	if err := report.WriteRecords(primary, records); err != nil {
		return err
	}

	log.Info().Str("path", primary).Int("rows", len(records)).Msg("report written")

	sizePath := set.outputPrefix + "_duplicates_by_size.csv"
	if err := report.WriteDuplicates(sizePath, bySize); err != nil {
		return err
	}

	log.Info().Str("path", sizePath).Int("groups", len(bySize)).Msg("report written")

	namePath := set.outputPrefix + "_duplicates_by_name.csv"
	if err := report.WriteDuplicates(namePath, byName); err != nil {
		return err
	}

	log.Info().Str("path", namePath).Int("groups", len(byName)).Msg("report written")

	fmt.Printf("\nScan complete.\nFiles found: %d\nCSV written to: %s\n", len(records), primary)

	return nil
}
