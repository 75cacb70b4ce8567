package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/md2html/pkg/config"
)

// isolatedOptions loads only project, explicit and CLI layers.
func isolatedOptions(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.DefaultExtensions(), result.Config.Extensions)
	assert.Equal(t, "sidecar", result.Config.Backups.Mode)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))
	configPath := filepath.Join(tmpDir, ".md2html.yml")
	writeFile(t, configPath, "out_dir: site\njobs: 3\nignore:\n  - \"drafts/**\"\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, "site", result.Config.OutDir)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.Equal(t, []string{"drafts/**"}, result.Config.Ignore)
	assert.Equal(t, []string{configPath}, result.LoadedFrom)
}

func TestLoad_ProjectConfigFoundFromSubdirectory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	writeFile(t, filepath.Join(root, ".md2html.yaml"), "jobs: 2\n")

	sub := filepath.Join(root, "docs", "guide")
	require.NoError(t, os.MkdirAll(sub, 0755))

	result, err := Load(context.Background(), isolatedOptions(sub))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Config.Jobs)
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))
	writeFile(t, filepath.Join(tmpDir, ".md2html.yml"), "jobs: 2\nout_dir: project\n")

	explicit := filepath.Join(t.TempDir(), "custom.yml")
	writeFile(t, explicit, "jobs: 8\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 8, result.Config.Jobs)
	assert.Equal(t, "project", result.Config.OutDir)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_CLIOverridesFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))
	writeFile(t, filepath.Join(tmpDir, ".md2html.yml"), "jobs: 2\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{Jobs: 5, Format: config.FormatJSON}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Config.Jobs)
	assert.Equal(t, config.FormatJSON, result.Config.Format)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", "flavor: gfm\n"},
		{"negative jobs", "jobs: -1\n"},
		{"bad backup mode", "backups:\n  mode: cloud\n"},
		{"bad log level", "log_level: loud\n"},
		{"bad glob", "ignore:\n  - \"[\"\n"},
		{"bad include glob", "include:\n  - \"docs/[\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))
			writeFile(t, filepath.Join(tmpDir, ".md2html.yml"), tt.content)

			_, err := Load(context.Background(), isolatedOptions(tmpDir))
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t.TempDir())
	opts.ExplicitPath = filepath.Join(t.TempDir(), "missing.yml")

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("MD2HTML_JOBS", "6")
	t.Setenv("MD2HTML_IGNORE", "a/**, b/**")
	t.Setenv("MD2HTML_INCLUDE", "docs/**")
	t.Setenv("MD2HTML_BACKUPS_ENABLED", "true")

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0755))
	writeFile(t, filepath.Join(tmpDir, ".md2html.yml"), "jobs: 2\n")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Config.Jobs)
	assert.Equal(t, []string{"a/**", "b/**"}, result.Config.Ignore)
	assert.Equal(t, []string{"docs/**"}, result.Config.Include)
	assert.True(t, result.Config.Backups.Enabled)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv("MD2HTML_JOBS", "many")
		require.Error(t, LoadFromEnv(config.NewConfig()))
	})

	t.Run("bool", func(t *testing.T) {
		t.Setenv("MD2HTML_BACKUPS_ENABLED", "maybe")
		require.Error(t, LoadFromEnv(config.NewConfig()))
	})
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	assert.Len(t, vars, len(envMappings))
	assert.Contains(t, vars, "MD2HTML_OUT_DIR")
}

func TestValidate_ExtensionWarning(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Extensions = []string{"md"}

	result := Validate(cfg)
	assert.True(t, result.Valid())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Error(), "extensions[0]")
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"base/**"}
	base.Jobs = 2

	override := &config.Config{
		OutDir:  "out",
		Include: []string{"docs/**"},
		Backups: config.BackupsConfig{Enabled: true},
	}

	merged := MergeAll(base, override)

	assert.Equal(t, "out", merged.OutDir)
	assert.Equal(t, 2, merged.Jobs)
	assert.Equal(t, []string{"base/**"}, merged.Ignore)
	assert.Equal(t, []string{"docs/**"}, merged.Include)
	assert.True(t, merged.Backups.Enabled)
	assert.Equal(t, "sidecar", merged.Backups.Mode)

	// The base is never mutated.
	assert.False(t, base.Backups.Enabled)
	assert.Empty(t, base.OutDir)

	assert.Nil(t, MergeAll())
	assert.Same(t, base, merge(base, nil))
}
