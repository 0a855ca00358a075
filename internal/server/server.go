// Package server exposes the character operators over MCP. This is the
// composition root: it wires the registry and the Endora entry points
// into tool handlers. No transformation logic lives here.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/sant0-9/mien/internal/character/endora"
)

const (
	// Name identifies the MCP server to clients.
	Name = "mien"

	// Description is returned by the get_server_info tool.
	Description = "MCP server for applying sitcom character sensory logic to image generation prompts"
)

// New creates the MCP server with all tools registered.
func New(version string) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	registerTools(s, version)
	return s
}

// ServeStdio validates the character ologs, then serves MCP on
// stdin/stdout until the client disconnects. Warnings go to stderr;
// stdout belongs to the protocol.
func ServeStdio(version string) error {
	c, err := endora.New()
	if err != nil {
		return err
	}
	for _, issue := range c.Worldview().ValidateCoherence() {
		log.Printf("WARNING: olog coherence: %s", issue)
	}

	return server.ServeStdio(New(version))
}
