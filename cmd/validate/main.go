// Command validate runs the readiness checks against the seeded dataset and
// exits non-zero when any check is failing. Warnings do not fail the run.
// The job is read-only.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"dealspot/internal/config"
	"dealspot/internal/jobs"
	"dealspot/internal/report"
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
		logger.Warnf("--clear has no effect on the read-only validation job, ignoring")
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

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	checks := jobs.Validate(ctx, db)
	summary := report.Render(os.Stdout, "READINESS REPORT", checks)
	logger.LogJobResult("validate", map[string]int{
		"passed":   summary.Passed,
		"warnings": summary.Warnings,
		"failed":   summary.Failed,
	})

	if summary.HasFailures() {
		logger.Errorf("❌ %d readiness checks failing", summary.Failed)
		return 1
	}
	if summary.Warnings > 0 {
		logger.Warnf("⚠️ dataset is usable with %d warnings", summary.Warnings)
	} else {
		logger.Infof("✅ all readiness checks passing")
	}
	return 0
}
