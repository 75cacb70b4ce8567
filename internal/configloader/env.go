package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/md2html/pkg/config"
)

// envVarPrefix is the prefix for all md2html environment variables.
const envVarPrefix = "MD2HTML_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping binds an environment variable to a config field setter.
type envMapping struct {
	typ         envFieldType
	description string
	apply       func(cfg *config.Config, value any)
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"EXTENSIONS": {
		typ:         envTypeSlice,
		description: "Comma-separated source extensions for batch conversion",
		apply:       func(cfg *config.Config, v any) { cfg.Extensions = v.([]string) },
	},
	"INCLUDE": {
		typ:         envTypeSlice,
		description: "Comma-separated list of include patterns",
		apply:       func(cfg *config.Config, v any) { cfg.Include = v.([]string) },
	},
	"IGNORE": {
		typ:         envTypeSlice,
		description: "Comma-separated list of ignore patterns",
		apply:       func(cfg *config.Config, v any) { cfg.Ignore = v.([]string) },
	},
	"OUT_DIR": {
		typ:         envTypeString,
		description: "Directory that batch output is mirrored under",
		apply:       func(cfg *config.Config, v any) { cfg.OutDir = v.(string) },
	},
	"JOBS": {
		typ:         envTypeInt,
		description: "Number of parallel workers (0 = auto)",
		apply:       func(cfg *config.Config, v any) { cfg.Jobs = v.(int) },
	},
	"LOG_LEVEL": {
		typ:         envTypeString,
		description: "Log level: debug, info, warn, or error",
		apply:       func(cfg *config.Config, v any) { cfg.LogLevel = v.(string) },
	},
	"FORMAT": {
		typ:         envTypeString,
		description: "Batch report format: text, json, or summary",
		apply:       func(cfg *config.Config, v any) { cfg.Format = config.OutputFormat(v.(string)) },
	},
	"BACKUPS_ENABLED": {
		typ:         envTypeBool,
		description: "Back up HTML files before replacing them: true or false",
		apply:       func(cfg *config.Config, v any) { cfg.Backups.Enabled = v.(bool) },
	},
	"BACKUPS_MODE": {
		typ:         envTypeString,
		description: "Backup mode: sidecar or none",
		apply:       func(cfg *config.Config, v any) { cfg.Backups.Mode = v.(string) },
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MD2HTML_ (e.g., MD2HTML_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvSuffixes() {
		envVar := envVarPrefix + suffix
		raw := os.Getenv(envVar)
		if raw == "" {
			continue
		}

		mapping := envMappings[suffix]
		value, err := parseEnvValue(mapping.typ, raw, envVar)
		if err != nil {
			return err
		}
		mapping.apply(cfg, value)
	}

	return nil
}

// parseEnvValue converts a raw environment value to the mapping's type.
func parseEnvValue(typ envFieldType, raw, envVar string) (any, error) {
	switch typ {
	case envTypeString:
		return raw, nil
	case envTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, raw)
		}
		return b, nil
	case envTypeInt:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer for %s: %q", envVar, raw)
		}
		return i, nil
	case envTypeSlice:
		return parseSliceValue(raw), nil
	default:
		return nil, fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace; empty elements are dropped.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
