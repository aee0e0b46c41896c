// Command seed loads the reference dataset: categories and their legacy
// metadata rows, stores, brands, offers, flash sales, coupons, social-proof
// stats, and the ops admin account. Re-running without --clear leaves
// already-seeded collections untouched.
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
	clear := flag.Bool("clear", false, "wipe previously seeded collections before reseeding")
	flag.Parse()

	envErr := godotenv.Load()
	logger.Init()
	if envErr != nil {
		logger.Debugf("no .env file found, using environment variables")
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

	result, err := jobs.Seed(ctx, db, cfg.Admin, *clear)
	if err != nil {
		logger.Errorf("❌ seeding failed: %v", err)
		return 1
	}

	result.Render(os.Stdout)
	logger.LogJobResult("seed", map[string]int{
		"inserted": result.Inserted(),
		"steps":    len(result.Steps),
	})
	return 0
}
