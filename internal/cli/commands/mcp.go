package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/uvws/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Serve workspace resolution over the Model Context Protocol on stdio,
for editor agents that want sibling-member paths without shelling out.`,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	dir, err := memberDir(nil)
	if err != nil {
		return err
	}
	_, resolver, err := setup(dir)
	if err != nil {
		return err
	}

	log.Info("starting MCP server", "transport", "stdio")
	return mcp.NewServer(resolver).Serve()
}
