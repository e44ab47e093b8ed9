// Package mcptool exposes the page analyzer as a Model Context Protocol tool
// so assistants can discover and call it over stdio or streamable HTTP.
package mcptool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
	"perfsmell/internal/log"
	"perfsmell/internal/model"
	"perfsmell/internal/service"
	"perfsmell/internal/util"
)

const (
	ServerName = "perfsmell"
	ToolName   = "analyze_performance_smells"
)

type PageAnalyzer interface {
	AnalyzePage(ctx context.Context, targetURL string) (*model.PerformanceAnalysis, error)
}

// NewServer builds an MCP server with the analyzer tool registered.
func NewServer(analyzer PageAnalyzer, version string) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.AddTool(Tool(), Handler(analyzer))
	return s
}

// NewHTTPHandler serves the MCP server over streamable HTTP. Each request is
// handled without a session since the tool keeps no state.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s, server.WithStateLess(true))
}

func Tool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Fetch a web page and report a 0-100 performance smell score "+
			"from render-blocking scripts, inline script weight, missing lazy loading and oversized images."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Absolute http(s) URL of the page to analyze"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}

// Handler reports analysis failures as tool errors rather than protocol
// errors, so the calling model can read the message.
func Handler(analyzer PageAnalyzer) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		targetURL, err := req.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !util.IsValidURL(targetURL) {
			return mcp.NewToolResultError(fmt.Sprintf("invalid url %q, expected an absolute http(s) URL", targetURL)), nil
		}

		result, err := analyzer.AnalyzePage(ctx, targetURL)
		if err != nil {
			if !errors.Is(err, service.ErrFetchFailure) && !errors.Is(err, service.ErrMalformedInput) {
				log.Logger.Error("mcp analysis failed", zap.String("url", targetURL), zap.Error(err))
			}
			return mcp.NewToolResultError(fmt.Sprintf("failed to analyze page: %v", err)), nil
		}

		body, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to encode analysis: %w", err)
		}
		return mcp.NewToolResultText(string(body)), nil
	}
}
