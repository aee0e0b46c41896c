// Command consolidate migrates per-category vibe/occasion/hashtag rows from
// the legacy collections into embedded arrays on the category documents.
// Safe to re-run: every category update is a full overwrite of the three
// embedded fields.
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

// run keeps the disconnect deferred on every exit path; main exits with the
// code it returns.
func run() int {
	clear := flag.Bool("clear", false, "accepted for parity with the seed job; this job never wipes data")
	flag.Parse()

	envErr := godotenv.Load()
	logger.Init()
	if envErr != nil {
		logger.Debugf("no .env file found, using environment variables")
	}
	if *clear {
		logger.Warnf("--clear has no effect on the consolidation job, ignoring")
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

	result, err := jobs.Consolidate(ctx, db)
	if err != nil {
		logger.Errorf("❌ consolidation failed: %v", err)
		return 1
	}

	result.Render(os.Stdout)
	logger.LogJobResult("consolidate", map[string]int{
		"migrated": result.Migrated,
		"skipped":  result.Skipped,
		"errored":  result.Errored,
	})
	if result.Errored > 0 {
		return 1
	}
	return 0
}
