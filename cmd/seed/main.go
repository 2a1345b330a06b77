// Command seed fills an empty database with demo records. Records whose key
// already exists are left untouched, so it is safe to run more than once.
package main

import (
	"context"
	"os"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/CodeZF375/crimsonbot/internal/config"
	"github.com/CodeZF375/crimsonbot/internal/database"
)

func main() {
	logger := log.New("seed")
	logger.SetOutput(os.Stdout)
	logger.SetHeader("${time_rfc3339} ${level} ${prefix}")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		logger.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		logger.Fatalf("ensure schema: %v", err)
	}

	if err := Run(ctx, db, logger); err != nil {
		logger.Fatalf("seed: %v", err)
	}
	logger.Info("seed complete")
}
