package main

import (
	"fmt"
	"os"

	"github.com/idelchi/folderaudit/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev" //nolint:gochecknoglobals // Set at build time

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
