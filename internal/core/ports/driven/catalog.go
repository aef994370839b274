package driven

import (
	"context"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// CatalogClient queries the remote book catalog.
// Each call performs exactly one request-response exchange.
type CatalogClient interface {
	// FetchByAuthor returns the books whose author matches q.Term.
	// A non-2xx response is reported as *domain.RemoteError.
	FetchByAuthor(ctx context.Context, q domain.SearchQuery) ([]domain.BookRecord, error)

	// FetchByTitle returns the books whose title matches q.Term.
	// A non-2xx response is reported as *domain.RemoteError.
	FetchByTitle(ctx context.Context, q domain.SearchQuery) ([]domain.BookRecord, error)
}
