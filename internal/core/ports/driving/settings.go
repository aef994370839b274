package driving

import (
	"time"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings: environment over config file over defaults.
	Get() (*domain.Settings, error)

	// SetBaseURL persists the catalog base URL.
	SetBaseURL(baseURL string) error

	// SetTimeout persists the catalog request timeout.
	SetTimeout(timeout time.Duration) error
}
