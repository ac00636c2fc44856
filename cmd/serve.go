package cmd

import (
	"fmt"

	mcpserver "github.com/lukman83/sportvision-scrap/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Starting Sport Vision MCP server on stdio...")

	if err := mcpserver.Serve(runScrape); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}
	return nil
}
