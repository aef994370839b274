package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

func TestToolRegistry_ListTools(t *testing.T) {
	registry := NewToolRegistry(&mockCatalogClient{})

	tools := registry.ListTools()

	require.Len(t, tools, 2)
	assert.Equal(t, domain.ToolGetBooksByAuthor, tools[0].Name)
	assert.Equal(t, domain.ToolGetBooksByTitle, tools[1].Name)
	assert.Equal(t, tools, registry.ListTools(), "listing must be deterministic")
}

func TestToolRegistry_CallTool_Success(t *testing.T) {
	ctx := context.Background()
	emma := []domain.BookRecord{{"title": "Emma", "author": "Jane Austen"}}

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		wantKind domain.SearchKind
		wantTerm string
	}{
		{
			name:     "by author",
			tool:     domain.ToolGetBooksByAuthor,
			args:     map[string]any{"author_name": "Jane Austen"},
			wantKind: domain.SearchByAuthor,
			wantTerm: "Jane Austen",
		},
		{
			name:     "by title with padding",
			tool:     domain.ToolGetBooksByTitle,
			args:     map[string]any{"book_name": "  Emma  "},
			wantKind: domain.SearchByTitle,
			wantTerm: "Emma",
		},
		{
			name:     "numeric term is coerced",
			tool:     domain.ToolGetBooksByTitle,
			args:     map[string]any{"book_name": float64(123)},
			wantKind: domain.SearchByTitle,
			wantTerm: "123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &mockCatalogClient{books: emma}
			registry := NewToolRegistry(catalog)

			books, err := registry.CallTool(ctx, tt.tool, tt.args)

			require.NoError(t, err)
			assert.Equal(t, emma, books)

			calls := catalog.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.wantKind, calls[0].kind)
			assert.Equal(t, tt.wantTerm, calls[0].query.Term)
			assert.Nil(t, calls[0].query.PublishByDate)
		})
	}
}

func TestToolRegistry_CallTool_PublishByDate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		args    map[string]any
		want    *string
		present bool
	}{
		{name: "absent", args: map[string]any{"author_name": "Adams"}},
		{name: "null", args: map[string]any{"author_name": "Adams", "publish_by_date": nil}},
		{
			name:    "forwarded verbatim",
			args:    map[string]any{"author_name": "Adams", "publish_by_date": "2004-03-15"},
			want:    ptr("2004-03-15"),
			present: true,
		},
		{
			name:    "malformed date is not validated locally",
			args:    map[string]any{"author_name": "Adams", "publish_by_date": "03"},
			want:    ptr("03"),
			present: true,
		},
		{
			name:    "empty string still forwarded",
			args:    map[string]any{"author_name": "Adams", "publish_by_date": ""},
			want:    ptr(""),
			present: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &mockCatalogClient{books: []domain.BookRecord{}}
			registry := NewToolRegistry(catalog)

			_, err := registry.CallTool(ctx, domain.ToolGetBooksByAuthor, tt.args)
			require.NoError(t, err)

			calls := catalog.Calls()
			require.Len(t, calls, 1)
			assert.Equal(t, tt.present, calls[0].query.HasPublishByDate())
			assert.Equal(t, tt.want, calls[0].query.PublishByDate)
		})
	}
}

func TestToolRegistry_CallTool_InvalidArguments(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		tool       string
		args       map[string]any
		wantField  string
		wantReason string
	}{
		{"missing author", domain.ToolGetBooksByAuthor, map[string]any{}, "author_name", domain.ReasonRequired},
		{"nil args", domain.ToolGetBooksByTitle, nil, "book_name", domain.ReasonRequired},
		{"empty title", domain.ToolGetBooksByTitle, map[string]any{"book_name": ""}, "book_name", domain.ReasonRequired},
		{"whitespace author", domain.ToolGetBooksByAuthor, map[string]any{"author_name": " \t\n "}, "author_name", domain.ReasonRequired},
		{"null author", domain.ToolGetBooksByAuthor, map[string]any{"author_name": nil}, "author_name", domain.ReasonRequired},
		{"wrong term field", domain.ToolGetBooksByAuthor, map[string]any{"book_name": "Emma"}, "author_name", domain.ReasonRequired},
		{
			"object author",
			domain.ToolGetBooksByAuthor,
			map[string]any{"author_name": map[string]any{"x": 1}},
			"author_name",
			domain.ReasonNotString,
		},
		{
			"array title",
			domain.ToolGetBooksByTitle,
			map[string]any{"book_name": []any{"Emma"}},
			"book_name",
			domain.ReasonNotString,
		},
		{
			"object date",
			domain.ToolGetBooksByAuthor,
			map[string]any{"author_name": "Austen", "publish_by_date": map[string]any{"year": 2000}},
			"publish_by_date",
			domain.ReasonNotString,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &mockCatalogClient{}
			registry := NewToolRegistry(catalog)

			books, err := registry.CallTool(ctx, tt.tool, tt.args)

			require.Error(t, err)
			assert.Nil(t, books)

			var invalid *domain.InvalidArgumentError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.wantField, invalid.Field)
			assert.Equal(t, tt.wantReason, invalid.Reason)
			assert.Empty(t, catalog.Calls(), "no outbound request on invalid input")
		})
	}
}

func TestToolRegistry_CallTool_UnknownTool(t *testing.T) {
	catalog := &mockCatalogClient{}
	registry := NewToolRegistry(catalog)

	_, err := registry.CallTool(context.Background(), "get_books_by_isbn", map[string]any{"isbn": "1"})

	var notFound *domain.ToolNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "get_books_by_isbn", notFound.Name)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, catalog.Calls())
}

func TestToolRegistry_CallTool_RemoteErrorPassesThrough(t *testing.T) {
	remote := &domain.RemoteError{
		StatusCode: 500,
		Body:       `{"detail": "Error querying database using search_books"}`,
	}
	catalog := &mockCatalogClient{err: fmt.Errorf("fetching: %w", remote)}
	registry := NewToolRegistry(catalog)

	_, err := registry.CallTool(context.Background(), domain.ToolGetBooksByTitle,
		map[string]any{"book_name": "Pride", "publish_by_date": "01"})

	var got *domain.RemoteError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, 500, got.StatusCode)
	assert.Equal(t, remote.Body, got.Body)
}

func TestToolRegistry_CallTool_OtherErrorsBecomeInternal(t *testing.T) {
	catalog := &mockCatalogClient{err: errors.New("dial tcp: connection refused")}
	registry := NewToolRegistry(catalog)

	_, err := registry.CallTool(context.Background(), domain.ToolGetBooksByAuthor,
		map[string]any{"author_name": "Vonnegut"})

	var internal *domain.InternalError
	require.True(t, errors.As(err, &internal))
	assert.Equal(t, domain.ToolGetBooksByAuthor, internal.ToolName)
	assert.Equal(t, "dial tcp: connection refused", internal.Message)
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestToolRegistry_CallTool_Idempotent(t *testing.T) {
	catalog := &mockCatalogClient{books: []domain.BookRecord{{"title": "Slaughterhouse-Five"}}}
	registry := NewToolRegistry(catalog)
	args := map[string]any{"book_name": "Slaughterhouse"}

	first, err := registry.CallTool(context.Background(), domain.ToolGetBooksByTitle, args)
	require.NoError(t, err)
	second, err := registry.CallTool(context.Background(), domain.ToolGetBooksByTitle, args)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, catalog.Calls(), 2, "results are never cached")
}

func TestToolRegistry_CallTool_Concurrent(t *testing.T) {
	catalog := &mockCatalogClient{books: []domain.BookRecord{}}
	registry := NewToolRegistry(catalog)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := registry.CallTool(context.Background(), domain.ToolGetBooksByAuthor,
				map[string]any{"author_name": fmt.Sprintf("author-%d", i)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, catalog.Calls(), 20)
}

func ptr(s string) *string { return &s }
