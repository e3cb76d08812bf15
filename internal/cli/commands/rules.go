package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/tablecheck/internal/cli/output"
	"github.com/leapstack-labs/tablecheck/pkg/lint"
	_ "github.com/leapstack-labs/tablecheck/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are listed in the order they run. Use --verbose to see full
documentation including examples and fix guidance, or pass a rule ID
to show a single rule in detail.`,
		Example: `  # List all rules
  tablecheck rules

  # Show details for a specific rule
  tablecheck rules TB01

  # List rules in the table group
  tablecheck rules --group table

  # Show full documentation
  tablecheck rules -V`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0])
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	rules := lint.AllInfo()
	if opts.Group != "" {
		var filtered []lint.RuleInfo
		for _, info := range rules {
			if info.Group == opts.Group {
				filtered = append(filtered, info)
			}
		}
		rules = filtered
	}

	if len(rules) == 0 {
		r.Println("No rules registered")
		return nil
	}

	if opts.Verbose {
		for i := range rules {
			renderRuleDetail(r, &rules[i])
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Description"})
	for _, info := range rules {
		t.AppendRow(table.Row{
			info.ID,
			info.Name,
			info.Group,
			info.DefaultSeverity.String(),
			truncateOneLine(info.Description, 60),
		})
	}
	t.Render()

	r.Printf("\n%d rules. Run 'tablecheck rules <id>' for details.\n", len(rules))
	return nil
}

func showRule(cmd *cobra.Command, id string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	rule, ok := lint.GetByID(strings.ToUpper(strings.TrimSpace(id)))
	if !ok {
		return fmt.Errorf("unknown rule: %s", id)
	}

	info := lint.GetRuleInfo(rule)
	renderRuleDetail(r, &info)
	return nil
}

func renderRuleDetail(r *output.Renderer, rule *lint.RuleInfo) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"),
		getSeverityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}
}

// Helper functions

func getSeverityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func truncateOneLine(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
