// Command reset-day clears the day's meal ledger while keeping the profile.
// It is intended to be invoked by an external cron job at midnight, not as
// an in-process goroutine. A running server reloads the meals before
// serving or changing them, so it picks up the reset.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/mealtrack-backend/internal/app"
	"github.com/heartmarshall/mealtrack-backend/internal/config"
	"github.com/heartmarshall/mealtrack-backend/internal/service/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	led, closeLedger, err := app.OpenLedger(ctx, cfg, logger)
	if err != nil {
		logger.Error("open ledger", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeLedger()

	svc := tracker.NewService(logger, nil, led, cfg.Tracker.Location)
	svc.Load(ctx)

	cleared := len(svc.Meals())
	if err := svc.ResetDay(ctx); err != nil {
		logger.Error("reset day failed", slog.String("error", err.Error()))
		closeLedger()
		os.Exit(1)
	}

	logger.Info("day reset completed",
		slog.Int("cleared", cleared),
		slog.String("backend", cfg.Ledger.Backend),
	)
}
