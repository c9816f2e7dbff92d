package figma

import (
	"context"

	"github.com/agentkit-io/agentkit/pkg/shared/errors"
)

// GetFile retrieves a file's full document tree.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*File, error) {
	return nil, errors.NewNotImplementedError("GetFile", clientName)
}

// GetFileNodes retrieves specific subtrees of a file by node ID.
func (c *Client) GetFileNodes(ctx context.Context, fileKey string, nodeIDs []string) (*NodesResponse, error) {
	return nil, errors.NewNotImplementedError("GetFileNodes", clientName)
}

// ListComments returns the comments on a file.
func (c *Client) ListComments(ctx context.Context, fileKey string) ([]Comment, error) {
	return nil, errors.NewNotImplementedError("ListComments", clientName)
}

// PostComment adds a comment to a file.
func (c *Client) PostComment(ctx context.Context, fileKey, message string, position *CommentPosition) (*Comment, error) {
	return nil, errors.NewNotImplementedError("PostComment", clientName)
}

// ExportImages renders nodes of a file into downloadable images.
func (c *Client) ExportImages(ctx context.Context, fileKey string, opts ImageExportOptions) (*ImageExport, error) {
	return nil, errors.NewNotImplementedError("ExportImages", clientName)
}
