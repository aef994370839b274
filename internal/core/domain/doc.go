// Package domain defines the core types for the books MCP server.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BookRecord: One book as returned by the remote catalog
//   - SearchQuery: A validated search term plus optional date filter
//   - ToolDescriptor: Static metadata for an advertised tool
//   - Settings: Catalog endpoint configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
