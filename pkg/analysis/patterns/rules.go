package patterns

// Severity classifies how seriously a match should be treated.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rule categories group the base table; callers can introduce their own.
const (
	CategorySecurity  = "security"
	CategoryQuality   = "quality"
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
)

// Rule is one named detection rule: a regular expression with metadata.
// Rules are immutable once compiled into a Matcher.
type Rule struct {
	Name     string   `json:"name" mapstructure:"name"`
	Category string   `json:"category" mapstructure:"category"`
	Pattern  string   `json:"pattern" mapstructure:"pattern"`
	Severity Severity `json:"severity" mapstructure:"severity"`
	Message  string   `json:"message" mapstructure:"message"`
}

// baseRules is the static rule table. Declaration order is significant: match
// results are reported rule-by-rule in this order.
var baseRules = []Rule{
	{
		Name:     "hardcoded_secret",
		Category: CategorySecurity,
		Pattern:  `(?i)(password|passwd|secret|api[_-]?key|auth[_-]?token)\s*[:=]\s*["'][^"']{4,}["']`,
		Severity: SeverityError,
		Message:  "possible hardcoded credential",
	},
	{
		Name:     "sql_injection",
		Category: CategorySecurity,
		Pattern:  `(?i)(execute|query|exec)\s*\([^)\n]*(\+\s*\w|%s|\$\{)`,
		Severity: SeverityError,
		Message:  "SQL built from unescaped input",
	},
	{
		Name:     "eval_usage",
		Category: CategorySecurity,
		Pattern:  `\beval\s*\(`,
		Severity: SeverityError,
		Message:  "eval on dynamic input is unsafe",
	},
	{
		Name:     "hardcoded_ip",
		Category: CategorySecurity,
		Pattern:  `\b(?:\d{1,3}\.){3}\d{1,3}\b`,
		Severity: SeverityInfo,
		Message:  "hardcoded IP address",
	},
	{
		Name:     "todo_comment",
		Category: CategoryQuality,
		Pattern:  `(?i)(//|#|<!--|/\*)\s*(todo|fixme|xxx)\b`,
		Severity: SeverityInfo,
		Message:  "unresolved TODO/FIXME marker",
	},
	{
		Name:     "empty_catch",
		Category: CategoryQuality,
		Pattern:  `catch\s*\([^)]*\)\s*\{\s*\}`,
		Severity: SeverityWarning,
		Message:  "empty catch block swallows errors",
	},
	{
		Name:     "console_log",
		Category: CategoryLanguage,
		Pattern:  `\bconsole\.(log|warn|error|debug|info)\s*\(`,
		Severity: SeverityWarning,
		Message:  "console statement left in code",
	},
	{
		Name:     "debugger_statement",
		Category: CategoryLanguage,
		Pattern:  `\bdebugger\b`,
		Severity: SeverityWarning,
		Message:  "debugger statement left in code",
	},
	{
		Name:     "print_statement",
		Category: CategoryLanguage,
		Pattern:  `(?m)^\s*print\s*\(`,
		Severity: SeverityWarning,
		Message:  "print statement left in code",
	},
	{
		Name:     "dangerously_set_html",
		Category: CategoryFramework,
		Pattern:  `dangerouslySetInnerHTML`,
		Severity: SeverityWarning,
		Message:  "raw HTML injection in React component",
	},
}

// Fixed rule-name subsets used by the convenience filters.
var (
	securityRuleNames = []string{"hardcoded_secret", "sql_injection", "eval_usage"}
	todoRuleNames     = []string{"todo_comment"}
	debugRuleNames    = []string{"console_log", "debugger_statement", "print_statement"}
)

// BaseRules returns a copy of the built-in rule table.
func BaseRules() []Rule {
	out := make([]Rule, len(baseRules))
	copy(out, baseRules)
	return out
}
