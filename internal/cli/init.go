package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/md2html/internal/configloader"
	"github.com/yaklabco/md2html/internal/logging"
	"github.com/yaklabco/md2html/pkg/config"
	"github.com/yaklabco/md2html/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .md2html.yml configuration file",
		Long: `Create a new .md2html.yml configuration file in the current directory.

When the file already exists, init asks before replacing it if stdin is a
terminal, and refuses otherwise unless --force is given.

Examples:
  md2html init                     Create a commented .md2html.yml
  md2html init --full              Write every setting with its default
  md2html init --output site.yml   Write to a custom file path

` + envVarsHelp(),
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			confirm := func(string) bool { return false }
			if stdin, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(stdin.Fd())) {
				confirm = func(prompt string) bool {
					return askYesNo(stdin, cmd.ErrOrStderr(), prompt)
				}
			}
			return runInit(commandContext(cmd), flags, confirm)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every setting with its default value")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .md2html.yml)")

	return cmd
}

// envVarsHelp lists the environment overrides accepted on top of the
// configuration file.
func envVarsHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Environment:")
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  %-*s  %s", width, name, vars[name])
	}
	return sb.String()
}

// runInit writes the configuration template. confirm is asked before an
// existing file is replaced without --force.
func runInit(ctx context.Context, flags *initFlags, confirm func(prompt string) bool) error {
	logger := logging.NewInteractive()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = configloader.ProjectConfigFiles[0]
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if fsutil.Exists(absPath) {
		switch {
		case flags.force:
			logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
		case confirm(fmt.Sprintf("%s already exists. Overwrite?", outputPath)):
		default:
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("customize your configuration by editing the file")

	return nil
}

// askYesNo prints prompt and reads a y/N answer from in.
func askYesNo(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
