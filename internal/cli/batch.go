package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2html/internal/logging"
	"github.com/yaklabco/md2html/pkg/config"
	"github.com/yaklabco/md2html/pkg/convert"
	"github.com/yaklabco/md2html/pkg/reporter"
	"github.com/yaklabco/md2html/pkg/runner"
)

type batchFlags struct {
	outDir     string
	jobs       int
	include    []string
	ignore     []string
	extensions []string
	format     string
	backup     bool
	compact    bool
	verbose    bool
	symlinks   bool
}

func newBatchCommand(global *globalFlags) *cobra.Command {
	flags := &batchFlags{}

	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "Convert every Markdown file under the given paths",
		Long:  batchLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "mirror output under this directory")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "only convert files matching these glob patterns")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "source file extensions (default .md, .markdown)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "save existing HTML files aside before replacing them")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "print a detailed summary")
	cmd.Flags().BoolVar(&flags.symlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

const batchLongDescription = `Convert Markdown files in bulk.

By default, converts all .md and .markdown files in the current directory
and subdirectories, writing each HTML file next to its source. Hidden files
and directories are skipped.

Examples:
  md2html batch                      # Convert current directory
  md2html batch docs/ README.md      # Convert selected paths
  md2html batch --out-dir site       # Mirror output under site/
  md2html batch --include "docs/**"  # Only convert docs/
  md2html batch --ignore "drafts/**" # Skip drafts
  md2html batch --format json        # Machine-readable report`

func runBatch(cmd *cobra.Command, args []string, global *globalFlags, flags *batchFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	// Only flags the user set override lower configuration layers.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(format)
	}
	if cmd.Flags().Changed("out-dir") {
		cliCfg.OutDir = flags.outDir
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("include") {
		cliCfg.Include = flags.include
	}
	if cmd.Flags().Changed("ignore") {
		cliCfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("ext") {
		cliCfg.Extensions = flags.extensions
	}
	cliCfg.Backups.Enabled = flags.backup

	cfg, workDir, err := loadConfig(ctx, global, cliCfg)
	if err != nil {
		return err
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     cfg.Extensions,
		IncludeGlobs:   cfg.Include,
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: flags.symlinks,
		OutDir:         cfg.OutDir,
		Jobs:           cfg.Jobs,
		Write:          writeOptions(cfg),
	}

	logger.Debug("starting batch run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldFormat, cfg.Format,
		logging.FieldOutDir, runOpts.OutDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	conv := convert.New(convert.Options{Logger: engineLogger(ctx)})
	result, err := runner.New(conv).Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("batch run failed"), err)
	}

	logger.Debug("batch run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesConverted, result.Stats.FilesConverted,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      reporter.Format(cfg.Format),
		Color:       global.color,
		ShowSummary: true,
		Verbose:     flags.verbose,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasFailures() {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed,
			result.Stats.FilesErrored, result.Stats.FilesDiscovered)
	}

	return nil
}
