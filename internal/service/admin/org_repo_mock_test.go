package admin

import (
	"context"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ orgRepo = &orgRepoMock{}

type orgRepoMock struct {
	ListActiveFunc func(ctx context.Context) ([]domain.Organization, error)

	calls struct {
		ListActive []struct {
			Ctx context.Context
		}
	}
	lockListActive sync.RWMutex
}

func (mock *orgRepoMock) ListActive(ctx context.Context) ([]domain.Organization, error) {
	if mock.ListActiveFunc == nil {
		panic("orgRepoMock.ListActiveFunc: method is nil but orgRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *orgRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
