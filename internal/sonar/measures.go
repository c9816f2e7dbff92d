package sonar

import (
	"context"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

// GetMeasures retrieves the named metrics for a component.
func (c *Client) GetMeasures(ctx context.Context, componentKey string, metrics []string) (*MeasuresResponse, error) {
	return nil, errors.NewNotImplementedError("GetMeasures", clientName)
}

// SearchIssues returns one page of issues matching the options.
func (c *Client) SearchIssues(ctx context.Context, opts IssueSearchOptions) (*IssueSearchResult, error) {
	return nil, errors.NewNotImplementedError("SearchIssues", clientName)
}

// GetQualityGateStatus returns the quality-gate evaluation of a project.
func (c *Client) GetQualityGateStatus(ctx context.Context, projectKey string) (*QualityGateStatus, error) {
	return nil, errors.NewNotImplementedError("GetQualityGateStatus", clientName)
}
