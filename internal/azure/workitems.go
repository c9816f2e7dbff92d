package azure

import (
	"context"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

// GetWorkItem retrieves one work item by ID.
func (c *Client) GetWorkItem(ctx context.Context, id int) (*WorkItem, error) {
	return nil, errors.NewNotImplementedError("GetWorkItem", clientName)
}

// CreateWorkItem creates a work item from the simplified request.
func (c *Client) CreateWorkItem(ctx context.Context, req WorkItemCreateRequest) (*WorkItem, error) {
	return nil, errors.NewNotImplementedError("CreateWorkItem", clientName)
}

// ListPRThreads returns the comment threads of a pull request.
func (c *Client) ListPRThreads(ctx context.Context, repositoryID string, pullRequestID int) ([]PRThread, error) {
	return nil, errors.NewNotImplementedError("ListPRThreads", clientName)
}

// AddPRComment posts a comment, opening a new thread when threadID is zero.
func (c *Client) AddPRComment(ctx context.Context, repositoryID string, pullRequestID, threadID int, content string) (*PRComment, error) {
	return nil, errors.NewNotImplementedError("AddPRComment", clientName)
}

// GetBuildStatus returns the status of one pipeline build.
func (c *Client) GetBuildStatus(ctx context.Context, buildID int) (*BuildStatus, error) {
	return nil, errors.NewNotImplementedError("GetBuildStatus", clientName)
}
