package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ResourceHandler serves a resource with a fixed URI.
type ResourceHandler interface {
	Resource() mcp.Resource
	Handle(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
}

// ResourceTemplateHandler serves resources matched by a URI template.
type ResourceTemplateHandler interface {
	Template() mcp.ResourceTemplate
	Handle(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)
}

// RegisterResources attaches all static and templated resources to the server.
func RegisterResources(s *server.MCPServer, resources []ResourceHandler, templates []ResourceTemplateHandler) {
	for _, r := range resources {
		s.AddResource(r.Resource(), r.Handle)
	}
	for _, t := range templates {
		s.AddResourceTemplate(t.Template(), t.Handle)
	}
}

// jsonContents renders v as an indented JSON resource body for uri.
func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource contents: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
