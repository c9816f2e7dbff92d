package jira

// User identifies a Jira account.
type User struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
	Email       string `json:"emailAddress,omitempty"`
}

// Status is the workflow state of an issue.
type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IssueType distinguishes bugs, tasks, stories and so on.
type IssueType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project keys an issue into its container.
type Project struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// IssueFields is the mutable payload of an issue.
type IssueFields struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Project     Project   `json:"project"`
	IssueType   IssueType `json:"issuetype"`
	Status      *Status   `json:"status,omitempty"`
	Assignee    *User     `json:"assignee,omitempty"`
	Reporter    *User     `json:"reporter,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	Created     string    `json:"created,omitempty"`
	Updated     string    `json:"updated,omitempty"`
}

// Issue is one Jira issue as returned by the API.
type Issue struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// CreateIssueRequest is the payload for creating an issue.
type CreateIssueRequest struct {
	Project     string   `json:"project"`
	IssueType   string   `json:"issue_type"`
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"`
	Assignee    string   `json:"assignee,omitempty"`
}

// Comment is one issue comment.
type Comment struct {
	ID      string `json:"id"`
	Author  User   `json:"author"`
	Body    string `json:"body"`
	Created string `json:"created,omitempty"`
}

// Transition is one available workflow move for an issue.
type Transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   Status `json:"to"`
}

// SearchOptions pages and projects a JQL search.
type SearchOptions struct {
	StartAt    int      `json:"start_at"`
	MaxResults int      `json:"max_results"`
	Fields     []string `json:"fields,omitempty"`
}

// SearchResult is one page of a JQL search.
type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}
