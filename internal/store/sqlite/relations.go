package sqlite

import (
	"context"
	"fmt"

	"gameofgraphs/internal/parser"
	"gameofgraphs/internal/store"
)

func (c *Client) Relations(ctx context.Context, kind parser.Kind) ([]parser.Relation, error) {
	if c.db == nil {
		return nil, store.ErrClosed
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", parser.ErrUnknownKind, kind)
	}

	rows, err := c.db.QueryContext(ctx,
		"SELECT id, kind, source, target FROM relations WHERE kind = ? ORDER BY id",
		string(kind),
	)
	if err != nil {
		return nil, fmt.Errorf("querying relations: %w", err)
	}
	defer rows.Close()

	var relations []parser.Relation
	for rows.Next() {
		var row store.Row
		if err := rows.Scan(&row.ID, &row.Kind, &row.Source, &row.Target); err != nil {
			return nil, fmt.Errorf("scanning relation: %w", err)
		}
		if rel, ok := row.Relation(); ok {
			relations = append(relations, rel)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating relations: %w", err)
	}

	return relations, nil
}
