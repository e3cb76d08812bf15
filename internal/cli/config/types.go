// Package config provides configuration management for the tablecheck CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	Verbose bool        `koanf:"verbose"`
	Lint    *LintConfig `koanf:"lint"`
}

// LintConfig holds lint rule configuration from the config file.
type LintConfig struct {
	// Disabled lists rule IDs to skip
	Disabled []string `koanf:"disabled"`

	// Severity maps rule IDs to severity override names
	Severity map[string]string `koanf:"severity"`

	// Rules maps rule IDs to rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`
}

// RuleOptions holds options for a single rule.
type RuleOptions map[string]any
