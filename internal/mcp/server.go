package mcp

import (
	"context"
	"io"
	"log/slog"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"gameofgraphs/internal/config"
	"gameofgraphs/internal/graph"
)

// Server answers tool calls against one graph loaded at startup. The graph
// is immutable, so concurrent calls need no locking.
type Server struct {
	graph   *graph.Graph
	defense config.DefenseConfig
	logger  *slog.Logger
	mcp     *sdk.Server
}

type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewServer(g *graph.Graph, defense config.DefenseConfig, version string, opts ...Option) *Server {
	s := &Server{
		graph:   g,
		defense: defense,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "gameofgraphs",
			Version: version,
		}, nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
