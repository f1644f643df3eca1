package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/config"
)

// envVarPrefix is the prefix for all verifmt environment variables.
const envVarPrefix = "VERIFMT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MODE":            {field: "formatter.mode", typ: envTypeString},
	"INDENT_SIZE":     {field: "formatter.indent_size", typ: envTypeInt},
	"USE_TABS":        {field: "formatter.use_tabs", typ: envTypeBool},
	"EXPAND_PORTS":    {field: "formatter.expand_module_ports", typ: envTypeBool},
	"WRITE":           {field: "write", typ: envTypeBool},
	"CHECK":           {field: "check", typ: envTypeBool},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"IGNORE":          {field: "ignore", typ: envTypeSlice},
	"BACKUPS_ENABLED": {field: "backups.enabled", typ: envTypeBool},
	"BACKUPS_MODE":    {field: "backups.mode", typ: envTypeString},
	"NO_BACKUPS":      {field: "no_backups", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with VERIFMT_ (e.g., VERIFMT_MODE).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	// Mode applies first so an engine switch re-bases the formatter before
	// other formatter variables land on top of it.
	if value := os.Getenv(envVarPrefix + "MODE"); value != "" {
		if err := applyEnvValue(cfg, envMappings["MODE"], value, envVarPrefix+"MODE"); err != nil {
			return err
		}
	}

	for envSuffix, mapping := range envMappings {
		if envSuffix == "MODE" {
			continue
		}

		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "formatter.mode":
		mode := config.Mode(value)
		if mode.IsValid() && mode != cfg.Formatter.Mode {
			cfg.Formatter = cfg.Formatter.ForMode(mode)
		} else {
			cfg.Formatter.Mode = mode
		}
	case "backups.mode":
		cfg.Backups.Mode = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "formatter.use_tabs":
		cfg.Formatter.UseTabs = value
	case "formatter.expand_module_ports":
		cfg.Formatter.ExpandModulePorts = value
	case "write":
		cfg.Write = value
	case "check":
		cfg.Check = value
	case "backups.enabled":
		cfg.Backups.Enabled = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "formatter.indent_size":
		cfg.Formatter.IndentSize = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"VERIFMT_MODE":            "Indentation mode: hierarchical or flat",
		"VERIFMT_INDENT_SIZE":     "Spaces per indent level when tabs are disabled",
		"VERIFMT_USE_TABS":        "Indent with tabs: true or false",
		"VERIFMT_EXPAND_PORTS":    "Reflow module port lists: true or false",
		"VERIFMT_WRITE":           "Rewrite files in place: true or false",
		"VERIFMT_CHECK":           "Check mode (exit nonzero on changes): true or false",
		"VERIFMT_JOBS":            "Number of parallel workers (0 = auto)",
		"VERIFMT_IGNORE":          "Comma-separated list of ignore patterns",
		"VERIFMT_BACKUPS_ENABLED": "Enable backups when writing: true or false",
		"VERIFMT_BACKUPS_MODE":    "Backup mode: sidecar or none",
		"VERIFMT_NO_BACKUPS":      "Disable backups: true or false",
	}
}
