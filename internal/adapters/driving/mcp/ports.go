package mcp

import (
	"github.com/custodia-labs/books-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tools advertises and executes the book search tools.
	Tools driving.ToolService

	// Settings exposes the catalog configuration as a resource.
	// Optional; the resource is not registered without it.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Tools == nil {
		return ErrMissingToolService
	}
	return nil
}
