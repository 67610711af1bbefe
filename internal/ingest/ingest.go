// Package ingest turns a relation source into an immutable graph.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gameofgraphs/internal/graph"
	"gameofgraphs/internal/parser"
	"gameofgraphs/internal/store"
)

type Result struct {
	FriendshipsRead int
	PlotsRead       int
	LinesSkipped    int
	// Missing lists the kinds whose source was not found, in read order.
	Missing []parser.Kind
}

// Degraded reports whether any relation set was replaced by an empty one.
func (r *Result) Degraded() bool {
	return len(r.Missing) > 0
}

type Options struct {
	Logger *slog.Logger
	// Kinds restricts which relation kinds are read. Empty means both.
	Kinds []parser.Kind
}

// skipCounter is implemented by sources that drop malformed input.
type skipCounter interface {
	Skipped(kind parser.Kind) int
}

type digester interface {
	Digest(kind parser.Kind) string
}

// Load reads both relation kinds from src and builds the graph. A missing
// source yields an empty relation set and is recorded in Result.Missing;
// any other error aborts the load.
func Load(ctx context.Context, src store.Source, options Options) (*graph.Graph, *Result, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	kinds := options.Kinds
	if len(kinds) == 0 {
		kinds = []parser.Kind{parser.KindFriendship, parser.KindPlot}
	}

	result := &Result{}
	builder := graph.NewBuilder()

	for _, kind := range kinds {
		relations, err := src.Relations(ctx, kind)
		if err != nil {
			if !errors.Is(err, ErrSourceMissing) {
				return nil, nil, fmt.Errorf("reading %s relations: %w", kind, err)
			}
			logger.Warn("relation source missing, using empty set", "kind", kind, "error", err)
			result.Missing = append(result.Missing, kind)
			continue
		}

		switch kind {
		case parser.KindFriendship:
			builder.AddFriendships(relations)
			result.FriendshipsRead = len(relations)
		case parser.KindPlot:
			builder.AddPlots(relations)
			result.PlotsRead = len(relations)
		}

		attrs := []any{"kind", kind, "relations", len(relations)}
		if sc, ok := src.(skipCounter); ok {
			skipped := sc.Skipped(kind)
			result.LinesSkipped += skipped
			attrs = append(attrs, "skipped", skipped)
		}
		if d, ok := src.(digester); ok && d.Digest(kind) != "" {
			attrs = append(attrs, "sha256", d.Digest(kind))
		}
		logger.Debug("relations loaded", attrs...)
	}

	return builder.Build(), result, nil
}
