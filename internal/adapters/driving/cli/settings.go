package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the Books API connection.

Environment variables BOOKS_API_BASE_URL and BOOKS_API_TIMEOUT_SECONDS take
precedence over stored settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsBaseURLCmd = &cobra.Command{
	Use:   "set-base-url [url]",
	Short: "Set the Books API base URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsBaseURL,
}

var settingsTimeoutCmd = &cobra.Command{
	Use:   "set-timeout [seconds]",
	Short: "Set the Books API request timeout",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTimeout,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsBaseURLCmd)
	settingsCmd.AddCommand(settingsTimeoutCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Catalog]")
	cmd.Printf("  Base URL: %s\n", settings.Catalog.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.Catalog.Timeout)
	return nil
}

func runSettingsBaseURL(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.SetBaseURL(args[0]); err != nil {
		return fmt.Errorf("failed to set base URL: %w", err)
	}

	cmd.Printf("Base URL set to %s\n", args[0])
	return nil
}

func runSettingsTimeout(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	seconds, err := cast.ToIntE(args[0])
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", args[0], err)
	}

	timeout := time.Duration(seconds) * time.Second
	if err := settingsService.SetTimeout(timeout); err != nil {
		return fmt.Errorf("failed to set timeout: %w", err)
	}

	cmd.Printf("Timeout set to %s\n", timeout)
	return nil
}
