package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"gameofgraphs/internal/parser"
	"gameofgraphs/internal/store"
)

// Relationship types per kind. Edges carry an integer seq property that
// fixes plot order; edges without one sort first.
var relTypes = map[parser.Kind]string{
	parser.KindFriendship: "FRIENDS_WITH",
	parser.KindPlot:       "PLOTS_AGAINST",
}

func (c *Client) Relations(ctx context.Context, kind parser.Kind) ([]parser.Relation, error) {
	if c == nil || c.driver == nil {
		return nil, store.ErrClosed
	}
	relType, ok := relTypes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", parser.ErrUnknownKind, kind)
	}

	session := c.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: c.database,
		AccessMode:   neo4j.AccessModeRead,
	})
	defer session.Close(ctx)

	query := fmt.Sprintf(`MATCH (a:Person)-[r:%s]->(b:Person)
RETURN a.name AS source, b.name AS target
ORDER BY coalesce(r.seq, 0), elementId(r)`, relType)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, nil)
		if err != nil {
			return nil, err
		}
		var relations []parser.Relation
		for res.Next(ctx) {
			record := res.Record()
			sourceValue, _ := record.Get("source")
			targetValue, _ := record.Get("target")
			source, _ := sourceValue.(string)
			target, _ := targetValue.(string)
			row := store.Row{Kind: string(kind), Source: source, Target: target}
			if rel, ok := row.Relation(); ok {
				relations = append(relations, rel)
			}
		}
		if err := res.Err(); err != nil {
			return nil, err
		}
		return relations, nil
	})
	if err != nil {
		return nil, fmt.Errorf("querying %s relations: %w", kind, err)
	}

	relations, _ := result.([]parser.Relation)
	return relations, nil
}
