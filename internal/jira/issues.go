package jira

import (
	"context"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

// GetIssue retrieves one issue by key.
func (c *Client) GetIssue(ctx context.Context, key string) (*Issue, error) {
	return nil, errors.NewNotImplementedError("GetIssue", clientName)
}

// CreateIssue creates a new issue.
func (c *Client) CreateIssue(ctx context.Context, req CreateIssueRequest) (*Issue, error) {
	return nil, errors.NewNotImplementedError("CreateIssue", clientName)
}

// SearchIssues runs a JQL query and returns one page of results.
func (c *Client) SearchIssues(ctx context.Context, jql string, opts SearchOptions) (*SearchResult, error) {
	return nil, errors.NewNotImplementedError("SearchIssues", clientName)
}

// AddComment appends a comment to an issue.
func (c *Client) AddComment(ctx context.Context, key, body string) (*Comment, error) {
	return nil, errors.NewNotImplementedError("AddComment", clientName)
}

// ListTransitions returns the workflow moves available for an issue.
func (c *Client) ListTransitions(ctx context.Context, key string) ([]Transition, error) {
	return nil, errors.NewNotImplementedError("ListTransitions", clientName)
}

// TransitionIssue moves an issue through the named workflow transition.
func (c *Client) TransitionIssue(ctx context.Context, key, transitionID string) error {
	return errors.NewNotImplementedError("TransitionIssue", clientName)
}
