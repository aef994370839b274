package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Catalog defaults.
const (
	// DefaultCatalogBaseURL is the public Books API deployment.
	DefaultCatalogBaseURL = "https://booksapi-webapp.azurewebsites.net"

	// DefaultCatalogTimeout bounds a single catalog request.
	DefaultCatalogTimeout = 30 * time.Second
)

// CatalogSettings holds the remote catalog endpoint configuration.
type CatalogSettings struct {
	// BaseURL is the catalog root; tool paths are appended to it.
	BaseURL string

	// Timeout bounds one request-response exchange.
	Timeout time.Duration
}

// Validate checks that the base URL is an absolute http(s) URL
// and the timeout is positive.
func (c CatalogSettings) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: catalog base URL %q: %v", ErrInvalidInput, c.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: catalog base URL %q must be an absolute http(s) URL", ErrInvalidInput, c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: catalog timeout must be positive, got %s", ErrInvalidInput, c.Timeout)
	}
	return nil
}

// Settings is the complete application configuration.
type Settings struct {
	Catalog CatalogSettings
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() *Settings {
	return &Settings{
		Catalog: CatalogSettings{
			BaseURL: DefaultCatalogBaseURL,
			Timeout: DefaultCatalogTimeout,
		},
	}
}
