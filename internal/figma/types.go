package figma

// Node is one element of a Figma document tree.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Visible  *bool  `json:"visible,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// File is a Figma file with its document tree and metadata.
type File struct {
	Name          string `json:"name"`
	LastModified  string `json:"lastModified"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
	Version       string `json:"version"`
	Document      Node   `json:"document"`
	SchemaVersion int    `json:"schemaVersion"`
}

// NodesResponse carries the subtrees requested by ID from one file.
type NodesResponse struct {
	Name  string              `json:"name"`
	Nodes map[string]NodeWrap `json:"nodes"`
}

// NodeWrap is the per-ID envelope in a nodes response.
type NodeWrap struct {
	Document Node `json:"document"`
}

// CommentPosition anchors a comment inside a file canvas.
type CommentPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Comment is one comment on a file.
type Comment struct {
	ID         string           `json:"id"`
	FileKey    string           `json:"file_key"`
	Message    string           `json:"message"`
	User       CommentUser      `json:"user"`
	CreatedAt  string           `json:"created_at"`
	ResolvedAt string           `json:"resolved_at,omitempty"`
	Position   *CommentPosition `json:"client_meta,omitempty"`
}

// CommentUser identifies a comment author.
type CommentUser struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
}

// ImageExportOptions selects nodes and rendering parameters for export.
type ImageExportOptions struct {
	NodeIDs []string `json:"node_ids"`
	Format  string   `json:"format"` // png, jpg, svg, pdf
	Scale   float64  `json:"scale,omitempty"`
}

// ImageExport maps node IDs to rendered image URLs.
type ImageExport struct {
	Images map[string]string `json:"images"`
	Err    string            `json:"err,omitempty"`
}
