// Package store reads relation records out of a database. Sources are
// read-only: nothing in this module writes relations back.
package store

import (
	"context"
	"errors"

	"gameofgraphs/internal/parser"
)

var ErrClosed = errors.New("store: source is closed")

// Source yields relations of one kind in their stored order. Plot order and
// repeats are significant and must be preserved.
type Source interface {
	Relations(ctx context.Context, kind parser.Kind) ([]parser.Relation, error)
	Close(ctx context.Context) error
}
