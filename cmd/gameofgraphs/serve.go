package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"gameofgraphs/internal/ingest"
	"gameofgraphs/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd)
		},
	}
	return cmd
}

func (a *app) runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, err := openSource(ctx, a.cfg)
	if err != nil {
		return err
	}
	g, result, err := ingest.Load(ctx, src, ingest.Options{Logger: a.logger})
	src.Close(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("graph loaded",
		"driver", a.cfg.Source.Driver,
		"people", len(g.People()),
		"plotters", len(g.Plotters()),
		"friendships", g.FriendshipCount(),
		"plots", g.PlotRecordCount(),
		"skipped", result.LinesSkipped,
	)
	if result.Degraded() {
		a.logger.Warn("serving a partial graph", "missing", result.Missing)
	}

	server := mcp.NewServer(g, a.cfg.Defense, version, mcp.WithLogger(a.logger))
	return server.Run(ctx, &sdk.StdioTransport{})
}
