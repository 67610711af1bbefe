package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"gameofgraphs/internal/parser"
	"gameofgraphs/internal/store"
)

func (c *Client) Relations(ctx context.Context, kind parser.Kind) ([]parser.Relation, error) {
	if c.pool == nil {
		return nil, store.ErrClosed
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", parser.ErrUnknownKind, kind)
	}

	rows, err := c.pool.Query(ctx,
		"SELECT id, kind, source, target FROM relations WHERE kind = $1 ORDER BY id",
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("querying relations: %w", err)
	}

	collected, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (store.Row, error) {
		var r store.Row
		err := row.Scan(&r.ID, &r.Kind, &r.Source, &r.Target)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning relations: %w", err)
	}

	relations := make([]parser.Relation, 0, len(collected))
	for _, r := range collected {
		if rel, ok := r.Relation(); ok {
			relations = append(relations, rel)
		}
	}
	return relations, nil
}
