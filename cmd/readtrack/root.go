package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/readtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/readtrack-backend/internal/config"
)

// adminTimeout bounds one-shot maintenance commands.
const adminTimeout = 30 * time.Second

type rootOptions struct {
	configPath string
}

func rootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "readtrack",
		Short:        "Daily reading tracker backend",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"path to the YAML config file (defaults to $CONFIG_PATH, then "+config.DefaultPath+")")

	rootCmd.AddCommand(
		serveCommand(opts),
		migrateCommand(opts),
		promoteCommand(opts),
		tokenCommand(opts),
		versionCommand(),
	)
	return rootCmd
}

func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// withPool loads the config, connects to the database and runs fn with a
// bounded context.
func (o *rootOptions) withPool(parent context.Context, fn func(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) error) error {
	cfg, err := o.load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(parent, adminTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
