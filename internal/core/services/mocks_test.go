package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// catalogCall records one invocation of the mock catalog.
type catalogCall struct {
	kind  domain.SearchKind
	query domain.SearchQuery
}

// mockCatalogClient is a mock implementation of driven.CatalogClient.
type mockCatalogClient struct {
	mu    sync.Mutex
	calls []catalogCall
	books []domain.BookRecord
	err   error
}

func (m *mockCatalogClient) record(kind domain.SearchKind, q domain.SearchQuery) ([]domain.BookRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, catalogCall{kind: kind, query: q})
	return m.books, m.err
}

func (m *mockCatalogClient) FetchByAuthor(_ context.Context, q domain.SearchQuery) ([]domain.BookRecord, error) {
	return m.record(domain.SearchByAuthor, q)
}

func (m *mockCatalogClient) FetchByTitle(_ context.Context, q domain.SearchQuery) ([]domain.BookRecord, error) {
	return m.record(domain.SearchByTitle, q)
}

func (m *mockCatalogClient) Calls() []catalogCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]catalogCall(nil), m.calls...)
}
