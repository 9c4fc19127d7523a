package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/readtrack-backend/migrations"
)

// MigrateDirection selects which way Migrate moves the schema.
type MigrateDirection string

const (
	MigrateUp   MigrateDirection = "up"
	MigrateDown MigrateDirection = "down"
)

// Migrate applies the embedded goose migrations to the database at dsn.
// Down rolls back a single version.
func Migrate(ctx context.Context, dsn string, dir MigrateDirection, log *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	// goose.NewProvider handles $$-delimited bodies correctly, unlike the
	// legacy goose.Up which splits on semicolons.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	var results []*goose.MigrationResult
	switch dir {
	case MigrateUp:
		results, err = provider.Up(ctx)
	case MigrateDown:
		var res *goose.MigrationResult
		res, err = provider.Down(ctx)
		if res != nil {
			results = append(results, res)
		}
	default:
		return fmt.Errorf("unknown migrate direction %q", dir)
	}
	if err != nil {
		return fmt.Errorf("goose %s: %w", dir, err)
	}

	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.String("direction", string(dir)),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	if len(results) == 0 {
		log.InfoContext(ctx, "schema is up to date", slog.String("direction", string(dir)))
	}

	return nil
}
