package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/books-mcp/internal/adapters/driving/mcp"
	"github.com/custodia-labs/books-mcp/internal/core/domain"
)

// ErrToolFailed is returned when a query command's tool call fails.
// The error object has already been printed.
var ErrToolFailed = errors.New("tool call failed")

var (
	publishByDate string
	querySummary  bool
)

var authorCmd = &cobra.Command{
	Use:   "author [name]",
	Short: "Search books by author",
	Long: `Runs the get_books_by_author tool against the Books API.
The name is matched partially. Results are printed as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery(domain.ToolGetBooksByAuthor, domain.ParamAuthorName),
}

var titleCmd = &cobra.Command{
	Use:   "title [name]",
	Short: "Search books by title",
	Long: `Runs the get_books_by_title tool against the Books API.
The title is matched partially. Results are printed as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery(domain.ToolGetBooksByTitle, domain.ParamBookName),
}

func init() {
	for _, cmd := range []*cobra.Command{authorCmd, titleCmd} {
		cmd.Flags().StringVar(&publishByDate, "publish-by-date", "", "only books published by this date (YYYY-MM-DD)")
		cmd.Flags().BoolVar(&querySummary, "summary", false, "print one line per book instead of JSON")
		rootCmd.AddCommand(cmd)
	}
}

func runQuery(toolName, termParam string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if toolService == nil {
			return errors.New("tool service not configured")
		}

		toolArgs := map[string]any{termParam: args[0]}
		if cmd.Flags().Changed("publish-by-date") {
			toolArgs[domain.ParamPublishByDate] = publishByDate
		}

		books, err := toolService.CallTool(cmd.Context(), toolName, toolArgs)
		if err != nil {
			return printToolError(cmd, toolName, err)
		}

		if querySummary {
			printSummary(cmd, books)
			return nil
		}

		text, err := mcp.RenderBooks(books)
		if err != nil {
			return fmt.Errorf("rendering results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
}

func printToolError(cmd *cobra.Command, toolName string, err error) error {
	data, marshalErr := json.MarshalIndent(mcp.NewErrorData(toolName, err), "", "  ")
	if marshalErr != nil {
		return err
	}
	cmd.PrintErrln(string(data))
	return fmt.Errorf("%w: %s", ErrToolFailed, toolName)
}

// printSummary prints title, author and publish date for each record.
// Records are opaque, so missing fields are skipped.
func printSummary(cmd *cobra.Command, books []domain.BookRecord) {
	out := cmd.OutOrStdout()
	if len(books) == 0 {
		fmt.Fprintln(out, "No books found.")
		return
	}

	for i, book := range books {
		line := cast.ToString(book["title"])
		if line == "" {
			line = "(untitled)"
		}
		if author := cast.ToString(book["author"]); author != "" {
			line += " by " + author
		}
		if date := cast.ToString(book["publish_date"]); date != "" {
			line += " (" + date + ")"
		}
		fmt.Fprintf(out, "[%d] %s\n", i+1, strings.TrimSpace(line))
	}
}
