package lint

import "github.com/leapstack-labs/tablecheck/pkg/ddl"

// Runner evaluates lint rules against parsed tables.
type Runner struct {
	config *Config
}

// NewRunner creates a new runner with optional configuration.
func NewRunner(config *Config) *Runner {
	if config == nil {
		config = NewConfig()
	}
	return &Runner{config: config}
}

// Result aggregates the diagnostics from one run.
type Result struct {
	Diagnostics []Diagnostic
}

// Clean reports whether no rule produced a diagnostic.
func (r *Result) Clean() bool {
	return len(r.Diagnostics) == 0
}

// Run invokes every enabled rule, in registration order, against the
// table and collects their diagnostics. All rules always run; a finding
// never aborts the remaining rules.
func (r *Runner) Run(t *ddl.Table) *Result {
	result := &Result{}
	if t == nil {
		return result
	}

	for _, rule := range All() {
		if r.config.IsDisabled(rule.ID) {
			continue
		}

		opts := r.config.GetRuleOptions(rule.ID)
		diags := rule.Check(t, opts)

		// Apply severity overrides
		for i := range diags {
			diags[i].Severity = r.config.GetSeverity(rule.ID, diags[i].Severity)
		}

		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	return result
}
