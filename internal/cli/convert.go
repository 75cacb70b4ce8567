package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/md2html/internal/logging"
	"github.com/yaklabco/md2html/pkg/config"
	"github.com/yaklabco/md2html/pkg/convert"
	"github.com/yaklabco/md2html/pkg/document"
	"github.com/yaklabco/md2html/pkg/fsutil"
)

// convertFlags holds the flags for single-file conversion.
type convertFlags struct {
	backup bool
}

func addConvertFlags(cmd *cobra.Command, flags *convertFlags) {
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "save an existing OUTPUT file aside before replacing it")
}

func runConvert(cmd *cobra.Command, args []string, global *globalFlags, flags *convertFlags) error {
	ctx := commandContext(cmd)

	cliCfg := &config.Config{}
	cliCfg.Backups.Enabled = flags.backup

	cfg, _, err := loadConfig(ctx, global, cliCfg)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	input, output := args[0], args[1]

	logger.Debug("converting file", logging.FieldInput, input, logging.FieldOutput, output)

	result, err := document.ConvertFile(ctx, input, output, document.Options{
		Converter: convert.New(convert.Options{Logger: engineLogger(ctx)}),
		Write:     writeOptions(cfg),
	})
	if err != nil {
		return withExitCode(ExitFailure, err)
	}

	written := result.Output
	if written.BackedUp {
		logger.Info("saved previous output",
			logging.FieldBackup, fsutil.BackupPath(written.Path, fsutil.BackupMode(cfg.Backups.Mode)))
	}
	logger.Debug("conversion complete",
		logging.FieldOutput, written.Path,
		logging.FieldLines, result.Lines,
		logging.FieldBytes, written.Bytes,
	)

	return nil
}
