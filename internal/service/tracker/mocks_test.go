package tracker

import (
	"context"
	"sync"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
	"github.com/heartmarshall/mealtrack-backend/internal/service/estimation"
)

var (
	_ estimator   = &estimatorMock{}
	_ ledgerStore = &ledgerStoreMock{}
)

type estimatorMock struct {
	EstimateFunc func(ctx context.Context, input estimation.EstimateInput) (*domain.MealEntry, error)

	calls struct {
		Estimate []struct {
			Ctx   context.Context
			Input estimation.EstimateInput
		}
	}
	lockEstimate sync.RWMutex
}

func (mock *estimatorMock) Estimate(ctx context.Context, input estimation.EstimateInput) (*domain.MealEntry, error) {
	if mock.EstimateFunc == nil {
		panic("estimatorMock.EstimateFunc: method is nil but estimator.Estimate was just called")
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

func (mock *estimatorMock) EstimateCalls() []struct {
	Ctx   context.Context
	Input estimation.EstimateInput
} {
	mock.lockEstimate.RLock()
	calls := mock.calls.Estimate
	mock.lockEstimate.RUnlock()
	return calls
}

type ledgerStoreMock struct {
	LoadProfileFunc func(ctx context.Context) (*domain.Profile, error)
	SaveProfileFunc func(ctx context.Context, p domain.Profile) error
	LoadMealsFunc   func(ctx context.Context) ([]domain.MealEntry, error)
	SaveMealsFunc   func(ctx context.Context, meals []domain.MealEntry) error

	calls struct {
		SaveProfile []struct {
			Ctx context.Context
			P   domain.Profile
		}
		SaveMeals []struct {
			Ctx   context.Context
			Meals []domain.MealEntry
		}
	}
	lockSaveProfile sync.RWMutex
	lockSaveMeals   sync.RWMutex
}

func (mock *ledgerStoreMock) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	if mock.LoadProfileFunc == nil {
		panic("ledgerStoreMock.LoadProfileFunc: method is nil but ledgerStore.LoadProfile was just called")
	}
	return mock.LoadProfileFunc(ctx)
}

func (mock *ledgerStoreMock) SaveProfile(ctx context.Context, p domain.Profile) error {
	if mock.SaveProfileFunc == nil {
		panic("ledgerStoreMock.SaveProfileFunc: method is nil but ledgerStore.SaveProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Profile
	}{Ctx: ctx, P: p}
	mock.lockSaveProfile.Lock()
	mock.calls.SaveProfile = append(mock.calls.SaveProfile, callInfo)
	mock.lockSaveProfile.Unlock()
	return mock.SaveProfileFunc(ctx, p)
}

func (mock *ledgerStoreMock) SaveProfileCalls() []struct {
	Ctx context.Context
	P   domain.Profile
} {
	mock.lockSaveProfile.RLock()
	calls := mock.calls.SaveProfile
	mock.lockSaveProfile.RUnlock()
	return calls
}

func (mock *ledgerStoreMock) LoadMeals(ctx context.Context) ([]domain.MealEntry, error) {
	if mock.LoadMealsFunc == nil {
		panic("ledgerStoreMock.LoadMealsFunc: method is nil but ledgerStore.LoadMeals was just called")
	}
	return mock.LoadMealsFunc(ctx)
}

func (mock *ledgerStoreMock) SaveMeals(ctx context.Context, meals []domain.MealEntry) error {
	if mock.SaveMealsFunc == nil {
		panic("ledgerStoreMock.SaveMealsFunc: method is nil but ledgerStore.SaveMeals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Meals []domain.MealEntry
	}{Ctx: ctx, Meals: meals}
	mock.lockSaveMeals.Lock()
	mock.calls.SaveMeals = append(mock.calls.SaveMeals, callInfo)
	mock.lockSaveMeals.Unlock()
	return mock.SaveMealsFunc(ctx, meals)
}

func (mock *ledgerStoreMock) SaveMealsCalls() []struct {
	Ctx   context.Context
	Meals []domain.MealEntry
} {
	mock.lockSaveMeals.RLock()
	calls := mock.calls.SaveMeals
	mock.lockSaveMeals.RUnlock()
	return calls
}
