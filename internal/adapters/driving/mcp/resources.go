package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Books API resources.
	uriScheme = "books://"

	catalogResourceURI = uriScheme + "catalog"
)

// catalogInfo describes the catalog the tools query.
type catalogInfo struct {
	BaseURL        string   `json:"base_url"`
	TimeoutSeconds int      `json:"timeout_seconds"`
	Tools          []string `json:"tools"`
}

// registerResources registers resource handlers with the MCP server.
func (s *Server) registerResources() {
	if s.ports.Settings == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         catalogResourceURI,
		Name:        "catalog",
		Description: "Books API endpoint and request timeout used by the search tools",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

// handleCatalogResource returns the effective catalog configuration.
func (s *Server) handleCatalogResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	info := catalogInfo{
		BaseURL:        settings.Catalog.BaseURL,
		TimeoutSeconds: int(settings.Catalog.Timeout.Seconds()),
	}
	for _, tool := range s.ports.Tools.ListTools() {
		info.Tools = append(info.Tools, tool.Name)
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling catalog info: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
