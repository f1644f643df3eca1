package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes. Fields absent from the
// document stay at their zero values; callers merge onto defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := &Config{
		Formatter: c.Formatter,
		Highlight: c.Highlight,
		Backups:   c.Backups,
		Write:     c.Write,
		Check:     c.Check,
		Jobs:      c.Jobs,
		NoBackups: c.NoBackups,
	}

	clone.Formatter.IndentKeywords = cloneStrings(c.Formatter.IndentKeywords)
	clone.Formatter.UnindentKeywords = cloneStrings(c.Formatter.UnindentKeywords)
	clone.Formatter.SpecialKeywords = cloneStrings(c.Formatter.SpecialKeywords)
	if c.Formatter.OperatorSpacing != nil {
		clone.Formatter.OperatorSpacing = make(map[string]OperatorSpacing, len(c.Formatter.OperatorSpacing))
		for k, v := range c.Formatter.OperatorSpacing {
			clone.Formatter.OperatorSpacing[k] = v
		}
	}

	if c.Highlight.Theme != nil {
		clone.Highlight.Theme = make(map[string]string, len(c.Highlight.Theme))
		for k, v := range c.Highlight.Theme {
			clone.Highlight.Theme[k] = v
		}
	}
	clone.Highlight.Keywords = cloneStrings(c.Highlight.Keywords)
	clone.Highlight.PortKeywords = cloneStrings(c.Highlight.PortKeywords)
	clone.Highlight.TypeKeywords = cloneStrings(c.Highlight.TypeKeywords)
	clone.Highlight.SpecialKeywords = cloneStrings(c.Highlight.SpecialKeywords)
	clone.Highlight.Operators = cloneStrings(c.Highlight.Operators)
	clone.Highlight.NumberPatterns = cloneStrings(c.Highlight.NumberPatterns)

	clone.Ignore = cloneStrings(c.Ignore)

	return clone
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
