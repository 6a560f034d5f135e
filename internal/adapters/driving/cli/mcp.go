package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/namereg/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default the server communicates over stdio using JSON-RPC. Use --http to
serve the streamable HTTP transport instead.

Tools: greet, add_name, list_names
Resources: names://all

Examples:
  # Stdio mode (for desktop assistants)
  namereg mcp

  # HTTP mode (for MCP Inspector, remote access)
  namereg mcp --http :8090`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

var mcpHTTPAddr string

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "", "serve over HTTP on this address instead of stdio")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Greeter: greetingService,
		Names:   nameService,
	})
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		// stdout stays free for the stdio transport, so status goes to stderr.
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}

	return server.Run(cmd.Context())
}
