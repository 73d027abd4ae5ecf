package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server on stdio",
		Long: `Launch an MCP server on stdin/stdout that exposes today's tasks, scheduled
events, presets and backups as tools and resources. Every change is saved
as it is made, and the daily reset runs while the server is up.`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			runner := mcp.Runner{
				Service: s.Service,
				Name:    "dayplan",
				Version: version,
				Logger:  s.Logger,
				Clock:   s.Clock,
			}
			return runner.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
