// Package config defines core configuration types for md2html.
// These types are pure data structures; discovery and layering live in internal/configloader.
package config

// OutputFormat specifies how batch results are reported.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backups of HTML files that are about to be replaced.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for md2html.
type Config struct {
	// Extensions lists the source file extensions picked up by batch conversion.
	Extensions []string `yaml:"extensions,omitempty"`

	// Include limits batch conversion to files matching one of these globs.
	// Empty includes every file with a listed extension.
	Include []string `yaml:"include,omitempty"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// OutDir mirrors batch output under this directory instead of writing
	// next to each source file.
	OutDir string `yaml:"out_dir,omitempty"`

	// Jobs specifies the number of parallel workers for batch conversion.
	// 0 means runtime.NumCPU().
	Jobs int `yaml:"jobs"`

	// LogLevel is the default log level: debug, info, warn, or error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Backups configures backups of replaced output files.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Format specifies the batch report format.
	Format OutputFormat `yaml:"-"`
}

// DefaultExtensions returns the default set of Markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: DefaultExtensions(),
		Jobs:       0,
		LogLevel:   "info",
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
		Format: FormatText,
	}
}
