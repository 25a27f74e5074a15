// ABOUTME: MCP server setup for the bloom health record store.
// ABOUTME: Wraps the MCP server with store, query, and insight access.
package mcp

import (
	"context"

	"github.com/google/uuid"
	"github.com/harperreed/bloom/internal/insight"
	"github.com/harperreed/bloom/internal/query"
	"github.com/harperreed/bloom/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with record store access. All tools and
// resources operate on behalf of a single user.
type Server struct {
	mcpServer *mcp.Server
	store     store.Store
	queries   *query.Queries
	builder   *insight.Builder
	userID    uuid.UUID
}

// NewServer creates a new MCP server bound to the given user.
func NewServer(s store.Store, userID uuid.UUID, builder *insight.Builder) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "bloom",
			Version: "1.0.0",
		},
		nil,
	)

	srv := &Server{
		mcpServer: mcpServer,
		store:     s,
		queries:   query.New(s),
		builder:   builder,
		userID:    userID,
	}

	srv.registerTools()
	srv.registerResources()

	return srv, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
