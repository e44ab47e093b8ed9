package main

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"perfsmell/internal/config"
	"perfsmell/internal/mcptool"
	"perfsmell/internal/service"
)

// NewMCPCmd serves the analyzer tool over stdio. Only protocol messages go to
// stdout; logs go to stderr through zap.
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the analyzer as an MCP tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := service.NewAnalyzer(config.AppConfig)
			return server.ServeStdio(mcptool.NewServer(analyzer, version))
		},
	}
}
