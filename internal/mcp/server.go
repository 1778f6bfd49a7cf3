// Package mcp exposes workspace resolution over the Model Context Protocol.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/aki/uvws/internal/core/workspace"
)

// Server wraps an MCP server around a workspace resolver.
type Server struct {
	mcpServer *server.MCPServer
	resolver  *workspace.Resolver
}

// NewServer creates the MCP server and registers the workspace tools.
func NewServer(resolver *workspace.Resolver) *Server {
	mcpServer := server.NewMCPServer(
		"uvws",
		"1.0.0",
		server.WithLogging(),
	)

	s := &Server{
		mcpServer: mcpServer,
		resolver:  resolver,
	}
	s.registerTools()
	return s
}

// Serve runs the server on stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}
