// Package cli provides the Cobra command structure for md2html.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/md2html/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root md2html command with all subcommands.
// Run with two arguments it converts a single file.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}
	convertOpts := &convertFlags{}

	rootCmd := &cobra.Command{
		Use:   "md2html INPUT OUTPUT",
		Short: "Convert simple Markdown documents to HTML",
		Long: `md2html converts a small, line-oriented subset of Markdown into HTML.

Supported blocks: headings (#, ##, ...), lists ("- " renders <ul>,
"* " renders <ol>) and paragraphs whose lines are joined with <br/>.
Inline formatting, nested lists, tables and code blocks are not supported,
and text is emitted without HTML escaping.

OUTPUT gets a .html extension appended unless it already ends in .html.

Examples:
  md2html README.md README          Write README.html
  md2html notes.md site/notes.html  Write site/notes.html
  md2html batch docs/ --out-dir site
  md2html init`,
		Args: func(cmd *cobra.Command, args []string) error {
			return withExitCode(ExitFailure, exactArgs(2)(cmd, args))
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if global.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(commandContext(cmd), logging.Default()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, global, convertOpts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", "auto",
		"colorize output: auto, always, never")

	addConvertFlags(rootCmd, convertOpts)

	rootCmd.AddCommand(newBatchCommand(global))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(global.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
