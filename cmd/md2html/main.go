// Package main is the entry point for the md2html CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/md2html/internal/cli"
	"github.com/yaklabco/md2html/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return cli.ExitSuccess
	}

	// Failed batch files were already reported per file.
	if !errors.Is(err, cli.ErrConversionFailed) {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
	}

	if errors.Is(err, cli.ErrUsage) {
		fmt.Fprint(os.Stderr, cmd.UsageString())
	}

	return cli.ExitCode(err)
}
