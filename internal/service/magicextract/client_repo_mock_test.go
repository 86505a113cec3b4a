package magicextract

import (
	"context"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ clientRepo = &clientRepoMock{}

type clientRepoMock struct {
	UpsertFunc func(ctx context.Context, c domain.Client) (*domain.Client, bool, error)

	calls struct {
		Upsert []struct {
			Ctx context.Context
			C   domain.Client
		}
	}
	lockUpsert sync.RWMutex
}

func (mock *clientRepoMock) Upsert(ctx context.Context, c domain.Client) (*domain.Client, bool, error) {
	if mock.UpsertFunc == nil {
		panic("clientRepoMock.UpsertFunc: method is nil but clientRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Client
	}{Ctx: ctx, C: c}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, c)
}

func (mock *clientRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	C   domain.Client
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
