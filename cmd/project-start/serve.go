package main

import (
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/leizerowicz/project-start/internal/mcp"
	"github.com/leizerowicz/project-start/internal/output"
)

// newServeCmd creates the serve command for the MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server over stdio",
		Long: `Serve exposes the workflow steps as Model Context Protocol tools over
stdio, so MCP-capable agents can scaffold and extend project documentation
without the interactive questionnaire. The server runs until the client
disconnects or the process is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries the MCP protocol; all human output goes to stderr.
			printer := output.NewPrinter(cmd.ErrOrStderr(), false, false)
			driver, err := newDriver(cmd, printer)
			if err != nil {
				return finishError(cmd, printer, err)
			}

			server := mcp.NewServer(buildVersion(), driver)
			if err := server.Run(cmd.Context(), &sdk.StdioTransport{}); err != nil {
				return finishError(cmd, printer, output.NewSystemErrorWithCause("running MCP server", err))
			}
			return nil
		},
	}
}
