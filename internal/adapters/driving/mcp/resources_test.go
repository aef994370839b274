package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCatalogResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns catalog settings", func(t *testing.T) {
		settings := &mockSettingsService{settings: &domain.Settings{
			Catalog: domain.CatalogSettings{BaseURL: "http://localhost:8000", Timeout: 12 * time.Second},
		}}
		server, err := NewServer(&Ports{Tools: &mockToolService{}, Settings: settings})
		require.NoError(t, err)

		result, err := server.handleCatalogResource(ctx, makeReadResourceRequest("books://catalog"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.JSONEq(t, `{
			"base_url": "http://localhost:8000",
			"timeout_seconds": 12,
			"tools": ["get_books_by_author", "get_books_by_title"]
		}`, result.Contents[0].Text)
	})

	t.Run("returns error on settings failure", func(t *testing.T) {
		settings := &mockSettingsService{err: errors.New("bad timeout")}
		server, err := NewServer(&Ports{Tools: &mockToolService{}, Settings: settings})
		require.NoError(t, err)

		_, err = server.handleCatalogResource(ctx, makeReadResourceRequest("books://catalog"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading settings")
	})
}
