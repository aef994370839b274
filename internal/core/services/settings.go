package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/custodia-labs/books-mcp/internal/core/domain"
	"github.com/custodia-labs/books-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/books-mcp/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCatalogBaseURL = "catalog.base_url"
	keyCatalogTimeout = "catalog.timeout_seconds"
)

// Environment variables that override stored settings.
const (
	EnvCatalogBaseURL = "BOOKS_API_BASE_URL"
	EnvCatalogTimeout = "BOOKS_API_TIMEOUT_SECONDS"
)

// SettingsService resolves settings from the environment, the config
// store and the built-in defaults, in that order of precedence.
type SettingsService struct {
	configStore driven.ConfigStore
	lookupEnv   func(string) (string, bool)
}

// NewSettingsService creates a new settings service reading the process environment.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		lookupEnv:   os.LookupEnv,
	}
}

// SetEnvLookup replaces the environment lookup function.
func (s *SettingsService) SetEnvLookup(fn func(string) (string, bool)) {
	s.lookupEnv = fn
}

// Get retrieves the effective application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if v := strings.TrimSpace(s.configStore.GetString(keyCatalogBaseURL)); v != "" {
		settings.Catalog.BaseURL = v
	}
	if v := s.configStore.GetInt(keyCatalogTimeout); v > 0 {
		settings.Catalog.Timeout = time.Duration(v) * time.Second
	}

	if v, ok := s.lookupEnv(EnvCatalogBaseURL); ok && strings.TrimSpace(v) != "" {
		settings.Catalog.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := s.lookupEnv(EnvCatalogTimeout); ok && strings.TrimSpace(v) != "" {
		secs, err := cast.ToIntE(strings.TrimSpace(v))
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive number of seconds, got %q",
				domain.ErrInvalidInput, EnvCatalogTimeout, v)
		}
		settings.Catalog.Timeout = time.Duration(secs) * time.Second
	}

	if err := settings.Catalog.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// SetBaseURL validates and persists the catalog base URL.
func (s *SettingsService) SetBaseURL(baseURL string) error {
	baseURL = strings.TrimSpace(baseURL)
	check := domain.CatalogSettings{BaseURL: baseURL, Timeout: domain.DefaultCatalogTimeout}
	if err := check.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(keyCatalogBaseURL, baseURL); err != nil {
		return fmt.Errorf("saving %s: %w", keyCatalogBaseURL, err)
	}
	return nil
}

// SetTimeout persists the catalog timeout, rounded down to whole seconds.
func (s *SettingsService) SetTimeout(timeout time.Duration) error {
	secs := int64(timeout / time.Second)
	if secs <= 0 {
		return fmt.Errorf("%w: catalog timeout must be at least one second, got %s",
			domain.ErrInvalidInput, timeout)
	}
	if err := s.configStore.Set(keyCatalogTimeout, secs); err != nil {
		return fmt.Errorf("saving %s: %w", keyCatalogTimeout, err)
	}
	return nil
}
