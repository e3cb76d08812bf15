package commands

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/tablecheck/internal/cli/config"
	"github.com/leapstack-labs/tablecheck/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execCheck runs the check command with the given args and returns stdout.
func execCheck(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCheckCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [statement]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"disable", "rule"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestCheckOutputContract(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "happy path with two columns",
			args: []string{"CREATE TABLE table (my_date Date, my_string String)"},
			want: "Congrats! Your table looks fine\n",
		},
		{
			name: "default statement when no argument given",
			args: nil,
			want: "Congrats! Your table looks fine\n",
		},
		{
			name: "short table name",
			args: []string{"CREATE TABLE t (a Date)"},
			want: "encountered error:\n\n" +
				"Your table name 't' is too short. We recommend at least 5 characters.\n",
		},
		{
			name: "duplicate columns",
			args: []string{"CREATE TABLE mytable (x Date, x String)"},
			want: "encountered error:\n\n" +
				"Duplicated column x was encountered 2 times.\n\n",
		},
		{
			name: "both rules fire under separate banners",
			args: []string{"CREATE TABLE t (x Date, x String)"},
			want: "encountered error:\n\n" +
				"Duplicated column x was encountered 2 times.\n\n" +
				"encountered error:\n\n" +
				"Your table name 't' is too short. We recommend at least 5 characters.\n",
		},
		{
			name: "keyword is case-insensitive",
			args: []string{"create table longname (c String)"},
			want: "Congrats! Your table looks fine\n",
		},
		{
			name: "disabled rule is skipped",
			args: []string{"--disable", "TB02", "CREATE TABLE t (a Date)"},
			want: "Congrats! Your table looks fine\n",
		},
		{
			name: "rule flag runs only the listed rules",
			args: []string{"--rule", "TB01", "CREATE TABLE t (a Date)"},
			want: "Congrats! Your table looks fine\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execCheck(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCheckNoCongratsWhenDirty(t *testing.T) {
	out, err := execCheck(t, "CREATE TABLE t (x Date, x String)")
	require.NoError(t, err, "lint findings are not errors")
	assert.NotContains(t, out, "Congrats!")
}

func TestCheckParseErrorIsFatal(t *testing.T) {
	tests := []struct {
		name      string
		statement string
	}{
		{"missing keyword", "DROP TABLE mytable"},
		{"name touching paren", "CREATE TABLE mytable(x Date)"},
		{"unknown column type", "CREATE TABLE mytable (x Timestamp)"},
		{"missing closing paren", "CREATE TABLE mytable (x Date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execCheck(t, tt.statement)
			require.Error(t, err)
			assert.ErrorContains(t, err, "failed to parse statement")
			assert.Empty(t, out, "no lint output on parse error")
		})
	}
}

func TestCheckParseErrorDoesNotPrintUsage(t *testing.T) {
	// The command silences cobra's usage and error output so a parse
	// failure surfaces only through the returned error, even when the
	// command runs without the root wiring.
	cmd := NewCheckCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"SELECT 1"})

	require.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
	assert.NotContains(t, errOut.String(), "Usage:")
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		cfg := buildLintConfig(nil, &CheckOptions{})

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("TB01"))
		assert.False(t, cfg.IsDisabled("TB02"))
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg := buildLintConfig(nil, &CheckOptions{Disable: []string{"TB01", " TB02 "}})

		assert.True(t, cfg.IsDisabled("TB01"))
		assert.True(t, cfg.IsDisabled("TB02"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		cfg := buildLintConfig(nil, &CheckOptions{Rules: []string{"TB01"}})

		assert.False(t, cfg.IsDisabled("TB01"))
		for _, rule := range lint.All() {
			if rule.ID != "TB01" {
				assert.True(t, cfg.IsDisabled(rule.ID), "rule %q should be disabled", rule.ID)
			}
		}
	})

	t.Run("project config disabled rules", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{Disabled: []string{"TB01"}},
		}
		cfg := buildLintConfig(projectCfg, &CheckOptions{})

		assert.True(t, cfg.IsDisabled("TB01"))
		assert.False(t, cfg.IsDisabled("TB02"))
	})

	t.Run("project config severity overrides", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Severity: map[string]string{"TB02": "error", "TB01": "bogus"},
			},
		}
		cfg := buildLintConfig(projectCfg, &CheckOptions{})

		assert.Equal(t, lint.SeverityError, cfg.GetSeverity("TB02", lint.SeverityInfo))
		// Invalid severity names are ignored
		assert.Equal(t, lint.SeverityWarning, cfg.GetSeverity("TB01", lint.SeverityWarning))
	})

	t.Run("project config rule options", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Rules: map[string]config.RuleOptions{
					"TB02": {"min_length": 8},
				},
			},
		}
		cfg := buildLintConfig(projectCfg, &CheckOptions{})

		opts := cfg.GetRuleOptions("TB02")
		require.NotNil(t, opts)
		assert.Equal(t, 8, lint.GetIntOption(opts, "min_length", 5))
	})
}
