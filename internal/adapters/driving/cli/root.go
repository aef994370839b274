// Package cli provides the cobra command tree for books-mcp.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/books-mcp/internal/adapters/driven/catalog/booksapi"
	"github.com/custodia-labs/books-mcp/internal/adapters/driven/config/file"
	"github.com/custodia-labs/books-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/books-mcp/internal/core/services"
	"github.com/custodia-labs/books-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
	envFile   string
)

// Services used by the commands. They are built lazily from flags unless
// already set.
var (
	toolService     driving.ToolService
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "books-mcp",
	Short: "MCP server for the Books API",
	Long: `books-mcp exposes book searches by author and by title from the Books API
as Model Context Protocol tools.

Run "books-mcp mcp serve" to start the server, or query the catalog directly
with "books-mcp author" and "books-mcp title".`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.books-mcp)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading settings")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if settingsService == nil {
		loaded, err := file.LoadDotEnv(envFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
		if loaded {
			logger.Debug("loaded environment from %s", envFile)
		}

		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		logger.Debug("config file: %s", store.Path())
		settingsService = services.NewSettingsService(store)
	}

	if toolService == nil {
		svc, err := newToolService(settingsService)
		if err != nil {
			return err
		}
		toolService = svc
	}

	return nil
}

// newToolService builds the registry against the configured catalog.
func newToolService(settings driving.SettingsService) (driving.ToolService, error) {
	cfg, err := settings.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	catalog, err := booksapi.NewClient(cfg.Catalog.BaseURL, booksapi.WithTimeout(cfg.Catalog.Timeout))
	if err != nil {
		return nil, fmt.Errorf("creating catalog client: %w", err)
	}

	logger.Debug("catalog %s (timeout %s)", cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	return services.NewToolRegistry(catalog), nil
}
