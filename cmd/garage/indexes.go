package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garageworks/garage-service/internal/infrastructure/db/mongo"
	"github.com/garageworks/garage-service/internal/pkg/config"
)

func newIndexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ensureIndexes(cmd.Context())
		},
	}
}

func ensureIndexes(ctx context.Context) error {
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreMongo {
		return fmt.Errorf("indexes: STORE_DRIVER is %q, nothing to index", cfg.StoreDriver)
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.OpTimeout,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("indexes ensured")
	return nil
}
