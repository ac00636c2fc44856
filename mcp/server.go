package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

func newServer(scrape ScrapeFunc) *server.MCPServer {
	s := server.NewMCPServer(
		"sportvision-scrap",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, scrape)
	return s
}

// Serve starts the MCP stdio server with all tools registered.
func Serve(scrape ScrapeFunc) error {
	return server.ServeStdio(newServer(scrape))
}
