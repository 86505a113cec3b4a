package rest

import (
	"context"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ accessCodeService = &accessCodeServiceMock{}

type accessCodeServiceMock struct {
	GetOrCreateCodeFunc func(ctx context.Context) (domain.AccessCode, error)
	RegenerateCodeFunc  func(ctx context.Context) (domain.AccessCode, error)

	calls struct {
		GetOrCreateCode []struct {
			Ctx context.Context
		}
		RegenerateCode []struct {
			Ctx context.Context
		}
	}
	lockGetOrCreateCode sync.RWMutex
	lockRegenerateCode  sync.RWMutex
}

func (mock *accessCodeServiceMock) GetOrCreateCode(ctx context.Context) (domain.AccessCode, error) {
	if mock.GetOrCreateCodeFunc == nil {
		panic("accessCodeServiceMock.GetOrCreateCodeFunc: method is nil but accessCodeService.GetOrCreateCode was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetOrCreateCode.Lock()
	mock.calls.GetOrCreateCode = append(mock.calls.GetOrCreateCode, callInfo)
	mock.lockGetOrCreateCode.Unlock()
	return mock.GetOrCreateCodeFunc(ctx)
}

func (mock *accessCodeServiceMock) GetOrCreateCodeCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetOrCreateCode.RLock()
	calls := mock.calls.GetOrCreateCode
	mock.lockGetOrCreateCode.RUnlock()
	return calls
}

func (mock *accessCodeServiceMock) RegenerateCode(ctx context.Context) (domain.AccessCode, error) {
	if mock.RegenerateCodeFunc == nil {
		panic("accessCodeServiceMock.RegenerateCodeFunc: method is nil but accessCodeService.RegenerateCode was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRegenerateCode.Lock()
	mock.calls.RegenerateCode = append(mock.calls.RegenerateCode, callInfo)
	mock.lockRegenerateCode.Unlock()
	return mock.RegenerateCodeFunc(ctx)
}

func (mock *accessCodeServiceMock) RegenerateCodeCalls() []struct {
	Ctx context.Context
} {
	mock.lockRegenerateCode.RLock()
	calls := mock.calls.RegenerateCode
	mock.lockRegenerateCode.RUnlock()
	return calls
}
