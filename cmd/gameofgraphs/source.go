package main

import (
	"context"
	"fmt"

	"gameofgraphs/internal/config"
	"gameofgraphs/internal/ingest"
	"gameofgraphs/internal/store"
	"gameofgraphs/internal/store/neo4j"
	"gameofgraphs/internal/store/postgres"
	"gameofgraphs/internal/store/sqlite"
)

// openSource returns the relation source named by the config.
func openSource(ctx context.Context, cfg *config.Config) (store.Source, error) {
	switch cfg.Source.Driver {
	case config.DriverFile:
		return ingest.NewFileSource(cfg.Source.Friendships, cfg.Source.Plots, cfg.ParserPhrases()), nil
	case config.DriverSQLite:
		client, err := sqlite.New(ctx, cfg.Source.DSN)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.DriverPostgres:
		client, err := postgres.New(ctx, cfg.Source.DSN)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.DriverNeo4j:
		n := cfg.Source.Neo4j
		client, err := neo4j.New(ctx, n.URI, n.Username, n.Password, n.Database)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown source driver: %s", cfg.Source.Driver)
	}
}
