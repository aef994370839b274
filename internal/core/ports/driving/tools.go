package driving

import (
	"context"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// ToolService advertises the book search tools and executes calls to them.
type ToolService interface {
	// ListTools returns the tool descriptors in advertisement order.
	ListTools() []domain.ToolDescriptor

	// CallTool runs the named tool with the given arguments.
	// Failures are one of *domain.ToolNotFoundError, *domain.InvalidArgumentError,
	// *domain.RemoteError or *domain.InternalError.
	CallTool(ctx context.Context, name string, args map[string]any) ([]domain.BookRecord, error)
}
