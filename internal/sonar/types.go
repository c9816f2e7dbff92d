package sonar

// Measure is one metric value for a component.
type Measure struct {
	Metric    string `json:"metric"`
	Value     string `json:"value"`
	BestValue bool   `json:"bestValue,omitempty"`
}

// Component is a project, directory or file known to SonarCloud.
type Component struct {
	Key       string    `json:"key"`
	Name      string    `json:"name"`
	Qualifier string    `json:"qualifier"`
	Measures  []Measure `json:"measures,omitempty"`
}

// MeasuresResponse wraps a component-measures lookup.
type MeasuresResponse struct {
	Component Component `json:"component"`
}

// TextRange locates an issue inside a file.
type TextRange struct {
	StartLine   int `json:"startLine"`
	EndLine     int `json:"endLine"`
	StartOffset int `json:"startOffset"`
	EndOffset   int `json:"endOffset"`
}

// Issue is one SonarCloud issue.
type Issue struct {
	Key       string     `json:"key"`
	Rule      string     `json:"rule"`
	Severity  string     `json:"severity"`
	Component string     `json:"component"`
	Project   string     `json:"project"`
	Line      int        `json:"line,omitempty"`
	TextRange *TextRange `json:"textRange,omitempty"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	Status    string     `json:"status"`
	Tags      []string   `json:"tags,omitempty"`
}

// IssueSearchOptions filters and pages an issue search.
type IssueSearchOptions struct {
	ComponentKeys []string `json:"component_keys,omitempty"`
	Severities    []string `json:"severities,omitempty"`
	Types         []string `json:"types,omitempty"`
	Resolved      *bool    `json:"resolved,omitempty"`
	Page          int      `json:"page"`
	PageSize      int      `json:"page_size"`
}

// IssueSearchResult is one page of issues.
type IssueSearchResult struct {
	Total  int     `json:"total"`
	Page   int     `json:"p"`
	Issues []Issue `json:"issues"`
}

// QualityGateCondition is one evaluated gate condition.
type QualityGateCondition struct {
	Status         string `json:"status"`
	MetricKey      string `json:"metricKey"`
	Comparator     string `json:"comparator"`
	ErrorThreshold string `json:"errorThreshold"`
	ActualValue    string `json:"actualValue"`
}

// QualityGateStatus is a project's gate evaluation.
type QualityGateStatus struct {
	Status     string                 `json:"status"` // OK, WARN, ERROR
	Conditions []QualityGateCondition `json:"conditions"`
}
