package rules

import (
	"fmt"

	"github.com/leapstack-labs/tablecheck/pkg/ddl"
	"github.com/leapstack-labs/tablecheck/pkg/lint"
)

func init() {
	lint.Register(NameLength)
}

// NameLength recommends a minimum table name length.
var NameLength = lint.RuleDef{
	ID:          "TB02",
	Name:        "table.name_length",
	Group:       "table",
	Description: "Table names should be at least 5 characters long.",
	Severity:    lint.SeverityInfo,
	ConfigKeys:  []string{"min_length"},
	Check:       checkNameLength,

	Rationale: `Very short table names carry no meaning. A name like "t" or "tmp"
tells the reader nothing about the data it holds and becomes impossible to
search for across a codebase.`,

	BadExample: `CREATE TABLE t (created Date)`,

	GoodExample: `CREATE TABLE transactions (created Date)`,

	Fix: "Choose a descriptive table name of at least the configured minimum length.",
}

// defaultMinLength is measured in bytes, not grapheme clusters.
const defaultMinLength = 5

func checkNameLength(t *ddl.Table, opts map[string]any) []lint.Diagnostic {
	minLen := lint.GetIntOption(opts, "min_length", defaultMinLength)
	if len(t.Name) >= minLen {
		return nil
	}

	return []lint.Diagnostic{{
		RuleID:   "TB02",
		Severity: lint.SeverityInfo,
		Message: fmt.Sprintf(
			"Your table name '%s' is too short. We recommend at least %d characters.",
			t.Name, minLen),
	}}
}
