package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharederrors "github.com/agentkit-io/agentkit/pkg/shared/errors"
)

func newTestMatcher(t *testing.T, custom ...Rule) *Matcher {
	t.Helper()
	m, err := NewMatcher(custom...)
	require.NoError(t, err)
	return m
}

func TestFindMatchesNoMatches(t *testing.T) {
	m := newTestMatcher(t)

	matches, err := m.FindMatches("package main\n\nfunc main() {}\n")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchesLocation(t *testing.T) {
	m := newTestMatcher(t)

	code := "const greeting = \"hi\"\n" +
		"api_key = \"abcd1234efgh\"\n" +
		"done()\n"

	matches, err := m.FindMatches(code, "hardcoded_secret")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	match := matches[0]
	assert.Equal(t, "hardcoded_secret", match.Rule)
	assert.Equal(t, 2, match.Line)
	assert.Equal(t, 1, match.Column)
	assert.Equal(t, `api_key = "abcd1234efgh"`, match.Context)
	assert.Equal(t, SeverityError, match.Severity)
}

func TestFindMatchesColumnOffset(t *testing.T) {
	m := newTestMatcher(t)

	code := "x = 1\nif ok { eval(payload) }\n"
	matches, err := m.FindMatches(code, "eval_usage")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, 9, matches[0].Column)
	assert.Equal(t, "eval(", matches[0].Text)
}

func TestFindMatchesOrdering(t *testing.T) {
	m := newTestMatcher(t)

	// eval on line 1, secrets on lines 2 and 4: the secret matches come first
	// because hardcoded_secret is declared before eval_usage, and within the
	// rule they follow text order.
	code := "eval(input)\n" +
		"password = \"letmein99\"\n" +
		"ok()\n" +
		"secret = \"swordfish\"\n"

	matches, err := m.FindMatches(code, "hardcoded_secret", "eval_usage")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "hardcoded_secret", matches[0].Rule)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, "hardcoded_secret", matches[1].Rule)
	assert.Equal(t, 4, matches[1].Line)
	assert.Equal(t, "eval_usage", matches[2].Rule)
	assert.Equal(t, 1, matches[2].Line)
}

func TestFindMatchesUnknownRule(t *testing.T) {
	m := newTestMatcher(t)

	_, err := m.FindMatches("anything", "no_such_rule")
	require.Error(t, err)

	var invalid *sharederrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "no_such_rule", invalid.Param)
}

func TestConvenienceFiltersMatchSubsets(t *testing.T) {
	m := newTestMatcher(t)

	code := "password = \"hunter22\"\n" +
		"// TODO: remove before release\n" +
		"console.log(state)\n" +
		"debugger\n" +
		"eval(blob)\n"

	tests := []struct {
		name   string
		filter func(string) ([]Match, error)
		rules  []string
	}{
		{"security", m.FindSecurityIssues, []string{"hardcoded_secret", "sql_injection", "eval_usage"}},
		{"todos", m.FindTODOs, []string{"todo_comment"}},
		{"debug", m.FindDebugStatements, []string{"console_log", "debugger_statement", "print_statement"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromFilter, err := tt.filter(code)
			require.NoError(t, err)
			fromNames, err := m.FindMatches(code, tt.rules...)
			require.NoError(t, err)
			assert.Equal(t, fromNames, fromFilter)
			assert.NotEmpty(t, fromFilter)
		})
	}
}

func TestCustomRuleOverridesByName(t *testing.T) {
	m := newTestMatcher(t, Rule{
		Name:     "todo_comment",
		Category: CategoryQuality,
		Pattern:  `\bHACK\b`,
		Severity: SeverityWarning,
		Message:  "hack marker",
	})

	matches, err := m.FindTODOs("// TODO old style\n// HACK new style\n")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, SeverityWarning, matches[0].Severity)
}

func TestCustomRuleAppended(t *testing.T) {
	m := newTestMatcher(t, Rule{
		Name:     "tab_indent",
		Category: CategoryQuality,
		Pattern:  `(?m)^\t`,
		Severity: SeverityInfo,
		Message:  "tab indentation",
	})

	matches, err := m.FindMatches("\tindented\n", "tab_indent")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	rules := m.Rules()
	assert.Equal(t, "tab_indent", rules[len(rules)-1].Name)
}

func TestNewMatcherRejectsBadPattern(t *testing.T) {
	_, err := NewMatcher(Rule{Name: "broken", Pattern: `([`})
	require.Error(t, err)

	var invalid *sharederrors.InvalidInputError
	assert.ErrorAs(t, err, &invalid)
}

func TestNewMatcherRejectsEmptyPattern(t *testing.T) {
	// a mistyped config key leaves Pattern empty after decoding; that must
	// fail construction, not match at every byte of the scanned text
	_, err := NewMatcher(Rule{Name: "mistyped_key", Category: CategoryQuality, Severity: SeverityInfo})
	require.Error(t, err)

	var invalid *sharederrors.InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "mistyped_key", invalid.Param)
}
