package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/estimation"
)

// estimationService defines the minimal interface needed by EstimationHandler.
type estimationService interface {
	Estimate(ctx context.Context, input estimation.EstimateInput) (*domain.MealEntry, error)
}

// EstimationHandler serves the stateless photo analysis endpoint.
type EstimationHandler struct {
	svc estimationService
	log *slog.Logger
}

// NewEstimationHandler creates an EstimationHandler.
func NewEstimationHandler(svc estimationService, logger *slog.Logger) *EstimationHandler {
	return &EstimationHandler{svc: svc, log: logger.With("handler", "estimation")}
}

type analyzeMealRequest struct {
	Image string `json:"image"`
}

type analyzeMealResponse struct {
	MealName string `json:"mealName"`
	Calories int    `json:"calories"`
}

// AnalyzeMeal handles POST /api/analyze-meal.
func (h *EstimationHandler) AnalyzeMeal(w http.ResponseWriter, r *http.Request) {
	var req analyzeMealRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.Estimate(r.Context(), estimation.EstimateInput{Image: req.Image})
	if err != nil {
		if errors.Is(err, domain.ErrEstimationFailed) {
			writeError(w, http.StatusInternalServerError, domain.ErrEstimationFailed.Error())
			return
		}
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeMealResponse{
		MealName: entry.Name,
		Calories: entry.Calories,
	})
}
