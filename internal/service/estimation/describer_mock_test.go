package estimation

import (
	"context"
	"sync"

	"github.com/heartmarshall/mealtrack-backend/internal/domain"
)

var _ describer = &describerMock{}

type describerMock struct {
	DescribeFunc func(ctx context.Context, img domain.MealImage) (string, error)

	calls struct {
		Describe []struct {
			Ctx context.Context
			Img domain.MealImage
		}
	}
	lockDescribe sync.RWMutex
}

func (mock *describerMock) Describe(ctx context.Context, img domain.MealImage) (string, error) {
	if mock.DescribeFunc == nil {
		panic("describerMock.DescribeFunc: method is nil but describer.Describe was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Img domain.MealImage
	}{Ctx: ctx, Img: img}
	mock.lockDescribe.Lock()
	mock.calls.Describe = append(mock.calls.Describe, callInfo)
	mock.lockDescribe.Unlock()
	return mock.DescribeFunc(ctx, img)
}

func (mock *describerMock) DescribeCalls() []struct {
	Ctx context.Context
	Img domain.MealImage
} {
	mock.lockDescribe.RLock()
	calls := mock.calls.Describe
	mock.lockDescribe.RUnlock()
	return calls
}
