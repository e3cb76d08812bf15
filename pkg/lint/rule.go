package lint

import "github.com/leapstack-labs/tablecheck/pkg/ddl"

// Diagnostic represents a single lint finding. Message carries the full
// human-readable text; one diagnostic may concatenate several sub-findings
// (one per line) when a rule reports more than one violation at once.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
}

// CheckFunc analyzes a parsed table and returns diagnostics.
// Rules must not mutate the table; a rule's only outputs are "clean"
// (nil) or diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(t *ddl.Table, opts map[string]any) []Diagnostic

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "TB01"
	Name        string    // Human-readable name, e.g., "table.duplicate_columns"
	Group       string    // Category, e.g., "table"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Code showing the anti-pattern
	GoodExample string // Code showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// GetRuleInfo extracts metadata from a RuleDef for documentation/tooling.
func GetRuleInfo(r RuleDef) RuleInfo {
	return RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}
