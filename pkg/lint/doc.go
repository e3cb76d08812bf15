// Package lint provides the rule framework and runner for table linting.
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their
// packages are imported:
//
//	import _ "github.com/leapstack-labs/tablecheck/pkg/lint/rules"
//
// The registry preserves registration order, and the runner evaluates
// rules in that order, so diagnostics are emitted deterministically.
// Adding a rule requires no runner changes beyond importing its package.
//
// # Configuration
//
// Use Config to control which rules are enabled, their severity, and
// rule-specific options:
//
//	config := lint.NewConfig()
//	config.Disable("TB01")
//	config.SetSeverity("TB02", lint.SeverityError)
//	config.SetRuleOptions("TB02", map[string]any{"min_length": 3})
//
// # Creating Custom Rules
//
// Define a RuleDef and register it from an init() function:
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "my.custom_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
