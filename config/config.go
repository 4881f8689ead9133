// Package config defines the tunables for the reindent filters (spec.md
// §6 "Configuration (reindent)"), loadable from YAML so a future CLI has a
// ready-made surface without the core depending on any CLI package.
package config

import (
	"github.com/juju/errors"
	yaml "gopkg.in/yaml.v2"
)

// ReindentConfig configures ReindentFilter.
type ReindentConfig struct {
	Width            int  `yaml:"width"`
	Char             byte `yaml:"char"`
	WrapAfter        int  `yaml:"wrap_after"`
	CommaFirst       bool `yaml:"comma_first"`
	IndentAfterFirst bool `yaml:"indent_after_first"`
	IndentColumns    bool `yaml:"indent_columns"`
}

// AlignedConfig configures AlignedIndentFilter.
type AlignedConfig struct {
	Char    byte `yaml:"char"`
	Newline byte `yaml:"newline"`
	Width   int  `yaml:"width"`
}

// DefaultReindentConfig mirrors the original's implied defaults: two-space
// indent and WrapAfter 0, under which an identifier list the reindent
// filter wraps breaks after every item, and an argument list inside a
// Function or VALUES is not wrapped.
func DefaultReindentConfig() ReindentConfig {
	return ReindentConfig{
		Width:            2,
		Char:             ' ',
		WrapAfter:        0,
		CommaFirst:       false,
		IndentAfterFirst: false,
		IndentColumns:    false,
	}
}

// DefaultAlignedConfig mirrors the original's implied defaults.
func DefaultAlignedConfig() AlignedConfig {
	return AlignedConfig{Char: ' ', Newline: '\n', Width: 2}
}

// LoadReindentConfig parses YAML bytes into a ReindentConfig seeded with
// DefaultReindentConfig, so a partial document only overrides the fields it
// names.
func LoadReindentConfig(data []byte) (ReindentConfig, error) {
	cfg := DefaultReindentConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Annotate(err, "parsing reindent config")
	}
	return cfg, nil
}

// LoadAlignedConfig parses YAML bytes into an AlignedConfig seeded with
// DefaultAlignedConfig.
func LoadAlignedConfig(data []byte) (AlignedConfig, error) {
	cfg := DefaultAlignedConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Annotate(err, "parsing aligned-indent config")
	}
	return cfg, nil
}
