// Command backfill patches existing store documents: default payment
// methods, fallback coordinates from the city table, and exclusive-zone
// tags. Each step only touches stores missing the field, so re-running is
// safe and resumes an interrupted run.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"dealspot/internal/config"
	"dealspot/internal/jobs"
	"dealspot/pkg/database"
	"dealspot/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	clear := flag.Bool("clear", false, "accepted for parity with the seed job; this job never wipes data")
	flag.Parse()

	envErr := godotenv.Load()
	logger.Init()
	if envErr != nil {
		logger.Debugf("no .env file found, using environment variables")
	}
	if *clear {
		logger.Warnf("--clear has no effect on the backfill job, ignoring")
	}
	cfg := config.Load()

	client, db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Errorf("❌ %v", err)
		return 1
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Warnf("failed to disconnect: %v", err)
		}
	}()
	logger.Infof("✅ connected to MongoDB database: %s", cfg.Database.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := jobs.Backfill(ctx, db)
	if err != nil {
		logger.Errorf("❌ backfill failed: %v", err)
		return 1
	}

	result.Render(os.Stdout)
	logger.LogJobResult("backfill", map[string]int{
		"updated": result.Updated(),
		"skipped": result.Skipped(),
		"errored": result.Errored(),
	})
	if result.Errored() > 0 {
		return 1
	}
	return 0
}
