package configloader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matcha-hdl/verifmt/pkg/config"
	"github.com/matcha-hdl/verifmt/pkg/verilog"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "formatter.mode").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownBackupModes lists valid backup mode values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownBackupModes = map[string]bool{
	"sidecar": true,
	"none":    true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Formatter.Mode != "" && !cfg.Formatter.Mode.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "formatter.mode",
			Value:   cfg.Formatter.Mode,
			Message: fmt.Sprintf("invalid mode %q; must be one of: hierarchical, flat", cfg.Formatter.Mode),
		})
	}

	if cfg.Formatter.IndentSize < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "formatter.indent_size",
			Value:   cfg.Formatter.IndentSize,
			Message: "indent_size must be >= 0",
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if cfg.Backups.Mode != "" && !knownBackupModes[cfg.Backups.Mode] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "backups.mode",
			Value:   cfg.Backups.Mode,
			Message: fmt.Sprintf("invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode),
		})
	}

	validateHighlight(cfg, result)
	validateIgnorePatterns(cfg, result)

	return result
}

// validateHighlight compiles the configured regex patterns so a bad config
// fails at load time instead of deep inside the classifier.
func validateHighlight(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Highlight.Operators {
		if _, err := regexp.Compile(pattern); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("highlight.operators[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid regex: %v", err),
			})
		}
	}
	for i, pattern := range cfg.Highlight.NumberPatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("highlight.number_patterns[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid regex: %v", err),
			})
		}
	}

	knownCategories := make(map[string]bool)
	for _, cat := range allCategoryNames() {
		knownCategories[cat] = true
	}
	for category := range cfg.Highlight.Theme {
		if !knownCategories[category] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   "highlight.theme." + category,
				Value:   category,
				Message: fmt.Sprintf("unknown token category %q; it will be ignored", category),
			})
		}
	}
}

// allCategoryNames returns the display names of every token category.
func allCategoryNames() []string {
	cats := verilog.Categories()
	names := make([]string, 0, len(cats))
	for _, cat := range cats {
		names = append(names, cat.String())
	}
	return names
}

// validateIgnorePatterns checks that ignore patterns are valid globs.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		// filepath.Match returns an error only for malformed patterns
		_, err := filepath.Match(pattern, "")
		if err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidBackupMode returns true if the backup mode is valid.
func IsValidBackupMode(mode string) bool {
	return knownBackupModes[mode]
}
