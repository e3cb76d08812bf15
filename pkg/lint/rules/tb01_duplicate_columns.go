package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/tablecheck/pkg/ddl"
	"github.com/leapstack-labs/tablecheck/pkg/lint"
)

func init() {
	lint.Register(DuplicateColumns)
}

// DuplicateColumns warns about column names declared more than once.
var DuplicateColumns = lint.RuleDef{
	ID:          "TB01",
	Name:        "table.duplicate_columns",
	Group:       "table",
	Description: "Column names must be unique within a table.",
	Severity:    lint.SeverityWarning,
	Check:       checkDuplicateColumns,

	Rationale: `Duplicate column names create ambiguity for every consumer of the
table. Most databases reject the statement outright; those that do not will
silently shadow one of the columns.`,

	BadExample: `CREATE TABLE orders (created Date, created String)`,

	GoodExample: `CREATE TABLE orders (created Date, created_label String)`,

	Fix: "Rename columns so every name appears exactly once.",
}

func checkDuplicateColumns(t *ddl.Table, _ map[string]any) []lint.Diagnostic {
	// Multiplicity map over column names; comparison is exact byte equality.
	counts := make(map[string]int, len(t.Columns))
	var firstSeen []string
	for _, col := range t.Columns {
		if counts[col.Name] == 0 {
			firstSeen = append(firstSeen, col.Name)
		}
		counts[col.Name]++
	}

	// One line per duplicated name, ordered by first occurrence so the
	// aggregate diagnostic is deterministic.
	var b strings.Builder
	for _, name := range firstSeen {
		if n := counts[name]; n > 1 {
			fmt.Fprintf(&b, "Duplicated column %s was encountered %d times.\n", name, n)
		}
	}
	if b.Len() == 0 {
		return nil
	}

	return []lint.Diagnostic{{
		RuleID:   "TB01",
		Severity: lint.SeverityWarning,
		Message:  b.String(),
	}}
}
