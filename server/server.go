// Package server exposes the sequence analysis toolkit as tools over
// the Model Context Protocol.
package server

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/op/go-logging"

	"github.com/bioseqkit/bioseq/toolkit"
)

// log is the global logging variable.
var log = logging.MustGetLogger("server")

// Tool couples an MCP tool definition with its handler.
type Tool interface {
	Handle() mcp.Tool
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// New builds an MCP server with every toolkit capability registered.
func New(p toolkit.Provider, version string) *server.MCPServer {
	s := server.NewMCPServer("Biosciences Toolkit", version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	for _, t := range Tools(p) {
		s.AddTool(t.Handle(), t.Handler)
	}
	return s
}

// Tools returns all tool implementations bound to a provider.
func Tools(p toolkit.Provider) []Tool {
	return []Tool{
		&reverseComplementTool{p},
		&transcribeTool{p},
		&backTranscribeTool{p},
		&translateTool{p},
		&gcContentTool{p},
		&molecularWeightTool{p},
		&proteinAnalysisTool{p},
		&convertFormatTool{p},
		&findMotifTool{p},
		&findORFsTool{p},
		&pairwiseAlignmentTool{p},
		&blastSearchTool{p},
		&sequenceDistanceTool{p},
	}
}

// Serve runs the server on the stdio transport until the stream
// closes.
func Serve(s *server.MCPServer) error {
	log.Info("Serving MCP on stdio")
	return server.ServeStdio(s)
}

// failure converts a handler error into a structured MCP error
// result. Tool errors are data for the caller, not protocol errors,
// so the Go error return stays nil.
func failure(err error) (*mcp.CallToolResult, error) {
	log.Debugf("tool error: %v", err)
	return mcp.NewToolResultError(err.Error()), nil
}

// number renders a numeric result the shortest way that round-trips.
func number(v float64) *mcp.CallToolResult {
	return mcp.NewToolResultText(strconv.FormatFloat(v, 'g', -1, 64))
}

// jsonResult marshals v as the textual payload of a success result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
