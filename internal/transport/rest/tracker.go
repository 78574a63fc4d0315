package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/tracker"
)

// photoFailedMessage points the user to manual entry when a photo cannot be analyzed.
const photoFailedMessage = "could not analyze meal photo, try adding it manually"

// trackerService defines the minimal interface needed by TrackerHandler.
type trackerService interface {
	Profile() (domain.Profile, error)
	SaveProfile(ctx context.Context, input tracker.ProfileInput) (domain.Profile, error)
	Meals() []domain.MealEntry
	AddManualMeal(ctx context.Context, input tracker.ManualMealInput) (domain.MealEntry, error)
	AnalyzePhoto(ctx context.Context, input tracker.PhotoInput) (domain.MealEntry, error)
	ResetDay(ctx context.Context) error
	Progress() domain.Progress
	Busy() bool
	Refresh(ctx context.Context)
}

// TrackerHandler serves the profile, meal ledger and summary endpoints.
type TrackerHandler struct {
	svc trackerService
	log *slog.Logger
}

// NewTrackerHandler creates a TrackerHandler.
func NewTrackerHandler(svc trackerService, logger *slog.Logger) *TrackerHandler {
	return &TrackerHandler{svc: svc, log: logger.With("handler", "tracker")}
}

type profileBody struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Height    float64 `json:"height"`
	Age       int     `json:"age"`
	DailyGoal int     `json:"dailyGoal"`
}

// caloriesText accepts calories as a JSON string or number and keeps the
// literal text so that parsing rules live in one place.
type caloriesText string

func (c *caloriesText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = caloriesText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*c = caloriesText(n.String())
	return nil
}

type addMealRequest struct {
	Name     string       `json:"name"`
	Calories caloriesText `json:"calories"`
}

type photoRequest struct {
	Image string `json:"image"`
}

type mealResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Time      string    `json:"time"`
	ImageRef  *string   `json:"imageRef,omitempty"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}

type mealsResponse struct {
	Meals []mealResponse `json:"meals"`
}

type summaryResponse struct {
	ProfileName    *string `json:"profileName"`
	TotalCalories  int     `json:"totalCalories"`
	DailyGoal      int     `json:"dailyGoal"`
	Percent        float64 `json:"percent"`
	Remaining      int     `json:"remaining"`
	MealCount      int     `json:"mealCount"`
	EstimatedCount int     `json:"estimatedCount"`
	Analyzing      bool    `json:"analyzing"`
}

// GetProfile handles GET /api/profile.
func (h *TrackerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Profile()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not set")
			return
		}
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileBody(p))
}

// PutProfile handles PUT /api/profile.
func (h *TrackerHandler) PutProfile(w http.ResponseWriter, r *http.Request) {
	var req profileBody
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.svc.SaveProfile(r.Context(), tracker.ProfileInput{
		Name:      req.Name,
		WeightKg:  req.Weight,
		HeightCm:  req.Height,
		Age:       req.Age,
		DailyGoal: req.DailyGoal,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileBody(p))
}

// ListMeals handles GET /api/meals.
func (h *TrackerHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	h.svc.Refresh(r.Context())
	meals := h.svc.Meals()
	resp := mealsResponse{Meals: make([]mealResponse, 0, len(meals))}
	for _, m := range meals {
		resp.Meals = append(resp.Meals, toMealResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddMeal handles POST /api/meals.
func (h *TrackerHandler) AddMeal(w http.ResponseWriter, r *http.Request) {
	var req addMealRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.AddManualMeal(r.Context(), tracker.ManualMealInput{
		Name:     req.Name,
		Calories: string(req.Calories),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMealResponse(entry))
}

// AddMealPhoto handles POST /api/meals/photo.
func (h *TrackerHandler) AddMealPhoto(w http.ResponseWriter, r *http.Request) {
	var req photoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := h.svc.AnalyzePhoto(r.Context(), tracker.PhotoInput{Image: req.Image})
	if err != nil {
		if errors.Is(err, domain.ErrEstimationFailed) {
			writeError(w, http.StatusInternalServerError, photoFailedMessage)
			return
		}
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMealResponse(entry))
}

// ResetDay handles DELETE /api/meals.
func (h *TrackerHandler) ResetDay(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetDay(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/summary.
func (h *TrackerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	h.svc.Refresh(r.Context())
	progress := h.svc.Progress()
	resp := summaryResponse{
		TotalCalories:  progress.TotalCalories,
		DailyGoal:      progress.DailyGoal,
		Percent:        progress.Percent,
		Remaining:      progress.Remaining,
		MealCount:      progress.MealCount,
		EstimatedCount: progress.EstimatedCount,
		Analyzing:      h.svc.Busy(),
	}
	if p, err := h.svc.Profile(); err == nil {
		resp.ProfileName = &p.Name
	}
	writeJSON(w, http.StatusOK, resp)
}

func toProfileBody(p domain.Profile) profileBody {
	return profileBody{
		Name:      p.Name,
		Weight:    p.WeightKg,
		Height:    p.HeightCm,
		Age:       p.Age,
		DailyGoal: p.DailyGoal,
	}
}

func toMealResponse(m domain.MealEntry) mealResponse {
	return mealResponse{
		ID:        m.ID.String(),
		Name:      m.Name,
		Calories:  m.Calories,
		Time:      m.Time,
		ImageRef:  m.ImageRef,
		Source:    string(m.Source),
		CreatedAt: m.CreatedAt,
	}
}
