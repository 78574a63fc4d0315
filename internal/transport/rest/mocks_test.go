package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/estimation"
	"github.com/heartmarshall/mealtrack-backend/internal/service/tracker"
)

var (
	_ estimationService = &estimationServiceMock{}
	_ trackerService    = &trackerServiceMock{}
)

type estimationServiceMock struct {
	EstimateFunc func(ctx context.Context, input estimation.EstimateInput) (*domain.MealEntry, error)

	calls struct {
		Estimate []struct {
			Ctx   context.Context
			Input estimation.EstimateInput
		}
	}
	lockEstimate sync.RWMutex
}

func (mock *estimationServiceMock) Estimate(ctx context.Context, input estimation.EstimateInput) (*domain.MealEntry, error) {
	if mock.EstimateFunc == nil {
		panic("estimationServiceMock.EstimateFunc: method is nil but estimationService.Estimate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input estimation.EstimateInput
	}{Ctx: ctx, Input: input}
	mock.lockEstimate.Lock()
	mock.calls.Estimate = append(mock.calls.Estimate, callInfo)
	mock.lockEstimate.Unlock()
	return mock.EstimateFunc(ctx, input)
}

func (mock *estimationServiceMock) EstimateCalls() []struct {
	Ctx   context.Context
	Input estimation.EstimateInput
} {
	mock.lockEstimate.RLock()
	calls := mock.calls.Estimate
	mock.lockEstimate.RUnlock()
	return calls
}

type trackerServiceMock struct {
	ProfileFunc       func() (domain.Profile, error)
	SaveProfileFunc   func(ctx context.Context, input tracker.ProfileInput) (domain.Profile, error)
	MealsFunc         func() []domain.MealEntry
	AddManualMealFunc func(ctx context.Context, input tracker.ManualMealInput) (domain.MealEntry, error)
	AnalyzePhotoFunc  func(ctx context.Context, input tracker.PhotoInput) (domain.MealEntry, error)
	ResetDayFunc      func(ctx context.Context) error
	ProgressFunc      func() domain.Progress
	BusyFunc          func() bool
	RefreshFunc       func(ctx context.Context)

	calls struct {
		SaveProfile   []tracker.ProfileInput
		AddManualMeal []tracker.ManualMealInput
		AnalyzePhoto  []tracker.PhotoInput
		ResetDay      int
		Refresh       int
	}
	mu sync.RWMutex
}

func (mock *trackerServiceMock) Profile() (domain.Profile, error) {
	if mock.ProfileFunc == nil {
		panic("trackerServiceMock.ProfileFunc: method is nil but trackerService.Profile was just called")
	}
	return mock.ProfileFunc()
}

func (mock *trackerServiceMock) SaveProfile(ctx context.Context, input tracker.ProfileInput) (domain.Profile, error) {
	if mock.SaveProfileFunc == nil {
		panic("trackerServiceMock.SaveProfileFunc: method is nil but trackerService.SaveProfile was just called")
	}
	mock.mu.Lock()
	mock.calls.SaveProfile = append(mock.calls.SaveProfile, input)
	mock.mu.Unlock()
	return mock.SaveProfileFunc(ctx, input)
}

func (mock *trackerServiceMock) SaveProfileCalls() []tracker.ProfileInput {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.SaveProfile
}

func (mock *trackerServiceMock) Meals() []domain.MealEntry {
	if mock.MealsFunc == nil {
		panic("trackerServiceMock.MealsFunc: method is nil but trackerService.Meals was just called")
	}
	return mock.MealsFunc()
}

func (mock *trackerServiceMock) AddManualMeal(ctx context.Context, input tracker.ManualMealInput) (domain.MealEntry, error) {
	if mock.AddManualMealFunc == nil {
		panic("trackerServiceMock.AddManualMealFunc: method is nil but trackerService.AddManualMeal was just called")
	}
	mock.mu.Lock()
	mock.calls.AddManualMeal = append(mock.calls.AddManualMeal, input)
	mock.mu.Unlock()
	return mock.AddManualMealFunc(ctx, input)
}

func (mock *trackerServiceMock) AddManualMealCalls() []tracker.ManualMealInput {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.AddManualMeal
}

func (mock *trackerServiceMock) AnalyzePhoto(ctx context.Context, input tracker.PhotoInput) (domain.MealEntry, error) {
	if mock.AnalyzePhotoFunc == nil {
		panic("trackerServiceMock.AnalyzePhotoFunc: method is nil but trackerService.AnalyzePhoto was just called")
	}
	mock.mu.Lock()
	mock.calls.AnalyzePhoto = append(mock.calls.AnalyzePhoto, input)
	mock.mu.Unlock()
	return mock.AnalyzePhotoFunc(ctx, input)
}

func (mock *trackerServiceMock) AnalyzePhotoCalls() []tracker.PhotoInput {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.AnalyzePhoto
}

func (mock *trackerServiceMock) ResetDay(ctx context.Context) error {
	if mock.ResetDayFunc == nil {
		panic("trackerServiceMock.ResetDayFunc: method is nil but trackerService.ResetDay was just called")
	}
	mock.mu.Lock()
	mock.calls.ResetDay++
	mock.mu.Unlock()
	return mock.ResetDayFunc(ctx)
}

func (mock *trackerServiceMock) ResetDayCalls() int {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ResetDay
}

func (mock *trackerServiceMock) Progress() domain.Progress {
	if mock.ProgressFunc == nil {
		panic("trackerServiceMock.ProgressFunc: method is nil but trackerService.Progress was just called")
	}
	return mock.ProgressFunc()
}

func (mock *trackerServiceMock) Busy() bool {
	if mock.BusyFunc == nil {
		return false
	}
	return mock.BusyFunc()
}

func (mock *trackerServiceMock) Refresh(ctx context.Context) {
	mock.mu.Lock()
	mock.calls.Refresh++
	mock.mu.Unlock()
	if mock.RefreshFunc != nil {
		mock.RefreshFunc(ctx)
	}
}

func (mock *trackerServiceMock) RefreshCalls() int {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Refresh
}
