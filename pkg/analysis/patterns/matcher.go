package patterns

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

// Match is one occurrence of a rule firing inside a scanned text.
type Match struct {
	Rule     string   `json:"rule"`
	Line     int      `json:"line"`   // 1-based
	Column   int      `json:"column"` // 1-based, byte offset within the line
	Text     string   `json:"text"`
	Context  string   `json:"context"` // full line the match starts on
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Matcher applies a fixed table of named rules to source text. It is
// immutable after construction and safe for concurrent use.
type Matcher struct {
	rules  []compiledRule
	byName map[string]int
}

// NewMatcher compiles the base rule table overlaid with any caller-supplied
// rules. A custom rule with the name of a base rule replaces it in place
// (last write wins); new names are appended in the order given.
func NewMatcher(custom ...Rule) (*Matcher, error) {
	table := BaseRules()
	index := make(map[string]int, len(table))
	for i, r := range table {
		index[r.Name] = i
	}

	for _, r := range custom {
		if r.Name == "" {
			return nil, errors.NewInvalidInputError("rule", "rule name must not be empty")
		}
		if r.Pattern == "" {
			// regexp.Compile("") succeeds and matches at every position
			return nil, errors.NewInvalidInputError(r.Name, "rule pattern must not be empty")
		}
		if i, ok := index[r.Name]; ok {
			table[i] = r
		} else {
			index[r.Name] = len(table)
			table = append(table, r)
		}
	}

	m := &Matcher{
		rules:  make([]compiledRule, 0, len(table)),
		byName: make(map[string]int, len(table)),
	}
	for _, r := range table {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.NewInvalidInputError(r.Name, fmt.Sprintf("pattern does not compile: %v", err))
		}
		m.byName[r.Name] = len(m.rules)
		m.rules = append(m.rules, compiledRule{Rule: r, re: re})
	}
	return m, nil
}

// Rules returns the effective rule table in declaration order.
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	for i, r := range m.rules {
		out[i] = r.Rule
	}
	return out
}

// FindMatches scans code with the named rules, or with every rule when no
// names are given. Matches are ordered by rule declaration order, then by
// position within the text. An unknown rule name fails the whole call.
func (m *Matcher) FindMatches(code string, ruleNames ...string) ([]Match, error) {
	selected := make([]compiledRule, 0, len(m.rules))
	if len(ruleNames) == 0 {
		selected = m.rules
	} else {
		seen := make(map[int]struct{}, len(ruleNames))
		for _, name := range ruleNames {
			i, ok := m.byName[name]
			if !ok {
				return nil, errors.NewInvalidInputError(name, "unknown rule name")
			}
			seen[i] = struct{}{}
		}
		indices := make([]int, 0, len(seen))
		for i := range seen {
			indices = append(indices, i)
		}
		sort.Ints(indices)
		for _, i := range indices {
			selected = append(selected, m.rules[i])
		}
	}

	lines := strings.Split(code, "\n")
	lineStarts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		lineStarts[i] = offset
		offset += len(line) + 1
	}

	var matches []Match
	for _, rule := range selected {
		for _, loc := range rule.re.FindAllStringIndex(code, -1) {
			lineIdx := sort.Search(len(lineStarts), func(i int) bool {
				return lineStarts[i] > loc[0]
			}) - 1
			matches = append(matches, Match{
				Rule:     rule.Name,
				Line:     lineIdx + 1,
				Column:   loc[0] - lineStarts[lineIdx] + 1,
				Text:     code[loc[0]:loc[1]],
				Context:  lines[lineIdx],
				Severity: rule.Severity,
				Message:  rule.Message,
			})
		}
	}
	return matches, nil
}

// FindSecurityIssues reports matches for the security rule subset.
func (m *Matcher) FindSecurityIssues(code string) ([]Match, error) {
	return m.FindMatches(code, securityRuleNames...)
}

// FindTODOs reports unresolved TODO/FIXME markers.
func (m *Matcher) FindTODOs(code string) ([]Match, error) {
	return m.FindMatches(code, todoRuleNames...)
}

// FindDebugStatements reports leftover debugging output statements.
func (m *Matcher) FindDebugStatements(code string) ([]Match, error) {
	return m.FindMatches(code, debugRuleNames...)
}
