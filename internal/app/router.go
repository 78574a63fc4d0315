package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/mealtrack-backend/internal/adapter/provider/vision"
	"github.com/heartmarshall/mealtrack-backend/internal/config"
	"github.com/heartmarshall/mealtrack-backend/internal/ledger"
	"github.com/heartmarshall/mealtrack-backend/internal/service/estimation"
	"github.com/heartmarshall/mealtrack-backend/internal/service/tracker"
	"github.com/heartmarshall/mealtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/mealtrack-backend/internal/transport/rest"
)

// services bundles what the HTTP layer serves.
type services struct {
	ledger     *ledger.Ledger
	estimation *estimation.Service
	tracker    *tracker.Service
}

func newServices(cfg *config.Config, logger *slog.Logger, led *ledger.Ledger) *services {
	visionClient := vision.NewClient(cfg.Vision, logger)
	estimationSvc := estimation.NewService(logger, visionClient, cfg.Tracker.Location)
	trackerSvc := tracker.NewService(logger, estimationSvc, led, cfg.Tracker.Location)

	return &services{
		ledger:     led,
		estimation: estimationSvc,
		tracker:    trackerSvc,
	}
}

func newRouter(cfg *config.Config, logger *slog.Logger, svcs *services) http.Handler {
	healthHandler := rest.NewHealthHandler(svcs.ledger, svcs.tracker, cfg.Ledger.Backend, BuildVersion())
	estimationHandler := rest.NewEstimationHandler(svcs.estimation, logger)
	trackerHandler := rest.NewTrackerHandler(svcs.tracker, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/analyze-meal", estimationHandler.AnalyzeMeal)

	mux.HandleFunc("GET /api/profile", trackerHandler.GetProfile)
	mux.HandleFunc("PUT /api/profile", trackerHandler.PutProfile)
	mux.HandleFunc("GET /api/meals", trackerHandler.ListMeals)
	mux.HandleFunc("POST /api/meals", trackerHandler.AddMeal)
	mux.HandleFunc("POST /api/meals/photo", trackerHandler.AddMealPhoto)
	mux.HandleFunc("DELETE /api/meals", trackerHandler.ResetDay)
	mux.HandleFunc("GET /api/summary", trackerHandler.Summary)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.MaxBody(cfg.Server.MaxBodyBytes),
	)(mux)
}
