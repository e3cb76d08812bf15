package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/tablecheck/internal/cli/config"
	"github.com/leapstack-labs/tablecheck/pkg/ddl"
	"github.com/leapstack-labs/tablecheck/pkg/lint"
	_ "github.com/leapstack-labs/tablecheck/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
)

// defaultStatement is checked when no statement argument is given.
const defaultStatement = "CREATE TABLE table (my_date Date, my_string String)"

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Statement string   // The CREATE TABLE statement to check
	Disable   []string // Rule IDs to disable
	Rules     []string // Run only specific rules
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [statement]",
		Short: "Parse and lint a CREATE TABLE statement",
		Long: `Parse a single CREATE TABLE statement and run lint rules against it.

The statement is passed as a single argument. When no argument is given,
a built-in example statement is checked.

Each finding is reported under an "encountered error:" banner; a run with
no findings prints a single congratulations line. The exit code is non-zero
only when the statement fails to parse.`,
		Example: `  # Check a statement
  tablecheck check 'CREATE TABLE transactions (created Date, label String)'

  # Disable specific rules
  tablecheck check --disable TB02 'CREATE TABLE t (a Date)'

  # Run only specific rules
  tablecheck check --rule TB01 'CREATE TABLE t (a Date, a String)'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Statement = args[0]
			} else {
				opts.Statement = defaultStatement
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	cmdCtx.Logger.Debug("checking statement", "statement", opts.Statement)

	// Parse first: a statement that does not match the grammar is fatal
	// and the rules are never entered.
	table, err := ddl.Parse(opts.Statement)
	if err != nil {
		return fmt.Errorf("failed to parse statement: %w", err)
	}

	lintCfg := buildLintConfig(cmdCtx.Cfg, opts)
	result := lint.NewRunner(lintCfg).Run(table)

	for _, d := range result.Diagnostics {
		r.Diagnostic(d.Message)
	}
	if result.Clean() {
		r.CleanOutcome()
	}

	// Lint findings are values, not errors: the exit code stays zero.
	return nil
}

// buildLintConfig merges project config and CLI flags into a lint.Config.
// CLI flags take precedence over the config file.
func buildLintConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.All() {
			if !enabledSet[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}
