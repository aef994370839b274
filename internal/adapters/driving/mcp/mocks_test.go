package mcp

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// toolCall records one invocation of the mock tool service.
type toolCall struct {
	name string
	args map[string]any
}

// mockToolService is a mock implementation of driving.ToolService.
type mockToolService struct {
	mu    sync.Mutex
	calls []toolCall
	books []domain.BookRecord
	err   error
	panic any
}

func (m *mockToolService) ListTools() []domain.ToolDescriptor {
	return domain.BookTools()
}

func (m *mockToolService) CallTool(_ context.Context, name string, args map[string]any) ([]domain.BookRecord, error) {
	m.mu.Lock()
	m.calls = append(m.calls, toolCall{name: name, args: args})
	books, err, p := m.books, m.err, m.panic
	m.mu.Unlock()

	if p != nil {
		panic(p)
	}
	return books, err
}

func (m *mockToolService) Calls() []toolCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]toolCall(nil), m.calls...)
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.Settings
	err      error
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) SetBaseURL(_ string) error {
	return m.err
}

func (m *mockSettingsService) SetTimeout(_ time.Duration) error {
	return m.err
}
