package azure

// Identity names an Azure DevOps user.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	UniqueName  string `json:"uniqueName,omitempty"`
}

// WorkItem is one work item with its field bag.
type WorkItem struct {
	ID     int                    `json:"id"`
	Rev    int                    `json:"rev"`
	URL    string                 `json:"url"`
	Fields map[string]interface{} `json:"fields"`
}

// WorkItemCreateRequest is a simplified creation payload; it expands into
// the JSON-patch document the API expects.
type WorkItemCreateRequest struct {
	Type        string   `json:"type"` // Bug, Task, User Story...
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	AreaPath    string   `json:"area_path,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	AssignedTo  string   `json:"assigned_to,omitempty"`
}

// PRCommentThreadStatus mirrors the API's thread status vocabulary.
type PRCommentThreadStatus string

const (
	ThreadActive   PRCommentThreadStatus = "active"
	ThreadFixed    PRCommentThreadStatus = "fixed"
	ThreadWontFix  PRCommentThreadStatus = "wontFix"
	ThreadClosed   PRCommentThreadStatus = "closed"
	ThreadPending  PRCommentThreadStatus = "pending"
	ThreadUnknown  PRCommentThreadStatus = "unknown"
	ThreadByDesign PRCommentThreadStatus = "byDesign"
)

// PRComment is one comment inside a thread.
type PRComment struct {
	ID            int      `json:"id"`
	Content       string   `json:"content"`
	Author        Identity `json:"author"`
	PublishedDate string   `json:"publishedDate,omitempty"`
}

// PRThreadContext anchors a thread to a file and line range in the diff.
type PRThreadContext struct {
	FilePath       string `json:"filePath"`
	RightFileStart int    `json:"rightFileStartLine,omitempty"`
	RightFileEnd   int    `json:"rightFileEndLine,omitempty"`
}

// PRThread is one comment thread on a pull request.
type PRThread struct {
	ID       int                   `json:"id"`
	Status   PRCommentThreadStatus `json:"status"`
	Context  *PRThreadContext      `json:"threadContext,omitempty"`
	Comments []PRComment           `json:"comments"`
}

// BuildStatus is the outcome of one pipeline build.
type BuildStatus struct {
	ID         int    `json:"id"`
	BuildNum   string `json:"buildNumber"`
	Status     string `json:"status"` // notStarted, inProgress, completed
	Result     string `json:"result,omitempty"`
	SourceRef  string `json:"sourceBranch,omitempty"`
	FinishTime string `json:"finishTime,omitempty"`
}
