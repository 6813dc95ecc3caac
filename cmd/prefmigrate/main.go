// Command prefmigrate applies the locale_preferences schema for deployments
// that persist locale choices in PostgreSQL.
package main

import (
	"context"
	"log"

	"fitcoach/internal/config"
	"fitcoach/internal/infrastructure/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("prefmigrate: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns)
	if err != nil {
		log.Fatalf("prefmigrate: connect: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("prefmigrate: %v", err)
	}
}
