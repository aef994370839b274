package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools",
	Long:  `Lists the tools advertised to MCP clients with their arguments.`,
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, _ []string) error {
	if toolService == nil {
		return errors.New("tool service not configured")
	}

	out := cmd.OutOrStdout()
	for _, tool := range toolService.ListTools() {
		fmt.Fprintln(out, tool.Name)
		fmt.Fprintf(out, "  %s\n", tool.Description)
		for _, p := range tool.Params {
			required := "optional"
			if p.Required {
				required = "required"
			}
			fmt.Fprintf(out, "  --%s (%s) %s\n", p.Name, required, p.Description)
		}
		fmt.Fprintln(out)
	}
	return nil
}
