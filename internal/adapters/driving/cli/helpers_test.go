package cli

import (
	"context"
	"sync"

	"github.com/custodia-labs/books-mcp/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/books-mcp/internal/core/domain"
	"github.com/custodia-labs/books-mcp/internal/core/services"
)

// mockToolService is a mock implementation of driving.ToolService.
type mockToolService struct {
	mu       sync.Mutex
	lastName string
	lastArgs map[string]any
	books    []domain.BookRecord
	err      error
}

func (m *mockToolService) ListTools() []domain.ToolDescriptor {
	return domain.BookTools()
}

func (m *mockToolService) CallTool(_ context.Context, name string, args map[string]any) ([]domain.BookRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastName = name
	m.lastArgs = args
	return m.books, m.err
}

// setupTestServices installs a mock tool service and a settings service over
// an in-memory store. The returned function restores the previous services.
func setupTestServices() (*mockToolService, func()) {
	origTools := toolService
	origSettings := settingsService

	tools := &mockToolService{}
	settings := services.NewSettingsService(memory.NewConfigStore())
	settings.SetEnvLookup(func(string) (string, bool) { return "", false })

	toolService = tools
	settingsService = settings
	resetQueryFlags()

	return tools, func() {
		toolService = origTools
		settingsService = origSettings
		resetQueryFlags()
	}
}

// resetQueryFlags clears flag state left over from earlier executions.
func resetQueryFlags() {
	publishByDate = ""
	querySummary = false
	for _, name := range []string{"publish-by-date", "summary"} {
		authorCmd.Flags().Lookup(name).Changed = false
		titleCmd.Flags().Lookup(name).Changed = false
	}
}
