package main

// Apply the embedded metadata migrations to DATABASE_URL:
//   go run ./cmd/migrate

import (
	"context"
	"os"
	"time"

	"resume-viewer/internal/shared/config"
	"resume-viewer/internal/shared/storage/db"
	"resume-viewer/internal/shared/telemetry"
)

func main() {
	os.Exit(run())
}

func run() int {
	defer telemetry.Sync()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		telemetry.Error("migrate.config", map[string]any{"error": "DATABASE_URL is required"})
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
	if err != nil {
		telemetry.Error("migrate.connect", map[string]any{"error": err})
		return 1
	}
	defer sqlDB.Close()

	start := time.Now()
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Error("migrate.failed", map[string]any{"error": err})
		return 1
	}
	version, err := db.CurrentVersion(sqlDB)
	if err != nil {
		telemetry.Error("migrate.version", map[string]any{"error": err})
		return 1
	}
	telemetry.Info("migrate.done", map[string]any{
		"version":     version,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return 0
}
