// Command admin performs catalog maintenance against the configured database.
//
// Usage:
//
//	admin -purge-all -yes
//	admin -purge-orphan-reports -older-than 720h
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/openexo/datagate/internal/admin"
	"github.com/openexo/datagate/internal/config"
	"github.com/openexo/datagate/internal/database"
	"github.com/openexo/datagate/internal/logging"
)

func main() {
	purgeAll := flag.Bool("purge-all", false, "delete every dataset and validation report")
	purgeOrphans := flag.Bool("purge-orphan-reports", false, "delete old reports not referenced by any dataset")
	olderThan := flag.Duration("older-than", 30*24*time.Hour, "age threshold for -purge-orphan-reports")
	yes := flag.Bool("yes", false, "confirm destructive operations")
	flag.Parse()

	if !*purgeAll && !*purgeOrphans {
		flag.Usage()
		os.Exit(2)
	}
	if *purgeAll && !*yes {
		slog.Error("-purge-all is destructive, pass -yes to confirm")
		os.Exit(2)
	}

	if err := godotenv.Overload(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	purger := &admin.Purger{DB: database.New(pool)}

	if *purgeAll {
		res, err := purger.PurgeAll(ctx)
		if err != nil {
			slog.Error("purge failed", "error", err)
			os.Exit(1)
		}
		slog.Info("catalog purged",
			"datasets_deleted", res.DatasetsDeleted,
			"reports_deleted", res.ReportsDeleted,
		)
		return
	}

	cutoff := time.Now().Add(-*olderThan)
	n, err := purger.PurgeReportsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("purge failed", "error", err)
		os.Exit(1)
	}
	slog.Info("orphan reports purged", "deleted", n, "cutoff", cutoff.Format(time.RFC3339))
}
