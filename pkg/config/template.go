package config

import "fmt"

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value instead of a commented sketch.
	Full bool
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		content, err := NewConfig().ToYAMLWithHeader(DefaultTemplateHeader())
		if err != nil {
			return nil, fmt.Errorf("generate full template: %w", err)
		}
		return content, nil
	}
	return []byte(minimalTemplate), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# md2html configuration
# See: https://github.com/yaklabco/md2html`
}

const minimalTemplate = `# md2html configuration
# See: https://github.com/yaklabco/md2html

# Source extensions picked up by "md2html batch"
extensions:
  - .md
  - .markdown

# Number of parallel workers for batch conversion (0 = auto)
jobs: 0

# Write batch output under this directory instead of next to each source
# out_dir: site

# Only convert files matching these patterns (doublestar globs)
# include:
#   - "docs/**"

# File patterns to skip during batch conversion (doublestar globs)
# ignore:
#   - "vendor/**"
#   - "**/drafts/**"

# Default log level: debug, info, warn, error
# log_level: info

# Keep a copy of an HTML file before it is replaced
backups:
  enabled: false
  mode: sidecar
`
