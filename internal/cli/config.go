package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/md2html/internal/configloader"
	"github.com/yaklabco/md2html/internal/logging"
	"github.com/yaklabco/md2html/pkg/config"
	"github.com/yaklabco/md2html/pkg/document"
	"github.com/yaklabco/md2html/pkg/fsutil"
)

// commandContext returns the command's context, or Background when unset.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the layered configuration for a command and applies
// its log level unless --debug already raised it.
func loadConfig(ctx context.Context, global *globalFlags, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.FromContext(ctx)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: global.configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(ErrConfig, err)
	}

	cfg := loadResult.Config
	if !global.debug {
		logging.SetLevel(cfg.LogLevel)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return cfg, workDir, nil
}

// writeOptions maps the backups section of cfg onto document write options.
func writeOptions(cfg *config.Config) document.WriteOptions {
	return document.WriteOptions{
		Backup: fsutil.BackupConfig{
			Enabled: cfg.Backups.Enabled,
			Mode:    fsutil.BackupMode(cfg.Backups.Mode),
		},
	}
}

// engineLogger is the logger handed to the converter. Its records only
// appear when the level is debug.
func engineLogger(ctx context.Context) *log.Logger {
	return logging.FromContext(ctx).WithPrefix("convert")
}
