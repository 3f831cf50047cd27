// Package mcpserver builds the MCP server and registers the conversion tools.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/iljaas/docmd/converter"
	"github.com/iljaas/docmd/logging"
	"github.com/iljaas/docmd/pipeline"
)

// Server identity reported during the MCP handshake.
const (
	serverName    = "docmd"
	serverVersion = "0.2.0"
)

// Server wraps the MCP server with its registered tools.
type Server struct {
	MCP *server.MCPServer
}

// New creates the MCP server and registers all conversion tools on it.
func New(runner *pipeline.Runner, conv *converter.Converter, log logging.Logger) *Server {
	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)
	tools := &Tools{Runner: runner, Converter: conv, Log: log}
	tools.Register(s)
	return &Server{MCP: s}
}

// ServeStdio blocks serving MCP over stdin/stdout until the client hangs up.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
