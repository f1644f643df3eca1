package configloader

import "github.com/matcha-hdl/verifmt/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	result.Formatter = mergeFormatter(base.Formatter, override.Formatter)
	result.Highlight = mergeHighlight(base.Highlight, override.Highlight)

	// Booleans: false is the zero value, so a config file cannot unset a
	// flag set by a lower layer. CLI flags go through merge last, which is
	// where this matters in practice.
	if override.Write {
		result.Write = override.Write
	}
	if override.Check {
		result.Check = override.Check
	}
	if override.NoBackups {
		result.NoBackups = override.NoBackups
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = override.Backups.Enabled
	}

	// Slices: override replaces base entirely if non-nil
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// mergeFormatter merges formatter configurations field by field.
func mergeFormatter(base, override config.FormatterConfig) config.FormatterConfig {
	result := base

	// An engine switch re-bases default-valued fields onto the new mode's
	// defaults before the override's explicit fields land on top.
	if override.Mode != "" && override.Mode != base.Mode && override.Mode.IsValid() {
		result = base.ForMode(override.Mode)
	}
	if override.Mode != "" {
		result.Mode = override.Mode
	}
	if override.IndentSize != 0 {
		result.IndentSize = override.IndentSize
	}
	if override.UseTabs {
		result.UseTabs = override.UseTabs
	}
	if override.ExpandModulePorts {
		result.ExpandModulePorts = override.ExpandModulePorts
	}

	if override.IndentKeywords != nil {
		result.IndentKeywords = override.IndentKeywords
	}
	if override.UnindentKeywords != nil {
		result.UnindentKeywords = override.UnindentKeywords
	}
	if override.SpecialKeywords != nil {
		result.SpecialKeywords = override.SpecialKeywords
	}

	if override.OperatorSpacing != nil {
		if result.OperatorSpacing == nil {
			result.OperatorSpacing = make(map[string]config.OperatorSpacing, len(override.OperatorSpacing))
			for op, spacing := range base.OperatorSpacing {
				result.OperatorSpacing[op] = spacing
			}
		}
		merged := make(map[string]config.OperatorSpacing, len(result.OperatorSpacing)+len(override.OperatorSpacing))
		for op, spacing := range result.OperatorSpacing {
			merged[op] = spacing
		}
		for op, spacing := range override.OperatorSpacing {
			merged[op] = spacing
		}
		result.OperatorSpacing = merged
	}

	return result
}

// mergeHighlight merges highlight configurations. The theme map deep-merges
// so a user can recolor one category without restating the whole palette;
// vocabulary slices replace wholesale.
func mergeHighlight(base, override config.HighlightConfig) config.HighlightConfig {
	result := base

	if override.Theme != nil {
		merged := make(map[string]string, len(base.Theme)+len(override.Theme))
		for category, color := range base.Theme {
			merged[category] = color
		}
		for category, color := range override.Theme {
			merged[category] = color
		}
		result.Theme = merged
	}

	if override.Keywords != nil {
		result.Keywords = override.Keywords
	}
	if override.PortKeywords != nil {
		result.PortKeywords = override.PortKeywords
	}
	if override.TypeKeywords != nil {
		result.TypeKeywords = override.TypeKeywords
	}
	if override.SpecialKeywords != nil {
		result.SpecialKeywords = override.SpecialKeywords
	}
	if override.Operators != nil {
		result.Operators = override.Operators
	}
	if override.NumberPatterns != nil {
		result.NumberPatterns = override.NumberPatterns
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
