package admin

import (
	"context"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ codeStore = &codeStoreMock{}

type codeStoreMock struct {
	GetLoginCodeFunc  func(ctx context.Context) (*domain.AccessCode, error)
	SaveLoginCodeFunc func(ctx context.Context, code domain.AccessCode) error

	calls struct {
		GetLoginCode []struct {
			Ctx context.Context
		}
		SaveLoginCode []struct {
			Ctx  context.Context
			Code domain.AccessCode
		}
	}
	lockGetLoginCode  sync.RWMutex
	lockSaveLoginCode sync.RWMutex
}

func (mock *codeStoreMock) GetLoginCode(ctx context.Context) (*domain.AccessCode, error) {
	if mock.GetLoginCodeFunc == nil {
		panic("codeStoreMock.GetLoginCodeFunc: method is nil but codeStore.GetLoginCode was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetLoginCode.Lock()
	mock.calls.GetLoginCode = append(mock.calls.GetLoginCode, callInfo)
	mock.lockGetLoginCode.Unlock()
	return mock.GetLoginCodeFunc(ctx)
}

func (mock *codeStoreMock) GetLoginCodeCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetLoginCode.RLock()
	calls := mock.calls.GetLoginCode
	mock.lockGetLoginCode.RUnlock()
	return calls
}

func (mock *codeStoreMock) SaveLoginCode(ctx context.Context, code domain.AccessCode) error {
	if mock.SaveLoginCodeFunc == nil {
		panic("codeStoreMock.SaveLoginCodeFunc: method is nil but codeStore.SaveLoginCode was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code domain.AccessCode
	}{Ctx: ctx, Code: code}
	mock.lockSaveLoginCode.Lock()
	mock.calls.SaveLoginCode = append(mock.calls.SaveLoginCode, callInfo)
	mock.lockSaveLoginCode.Unlock()
	return mock.SaveLoginCodeFunc(ctx, code)
}

func (mock *codeStoreMock) SaveLoginCodeCalls() []struct {
	Ctx  context.Context
	Code domain.AccessCode
} {
	mock.lockSaveLoginCode.RLock()
	calls := mock.calls.SaveLoginCode
	mock.lockSaveLoginCode.RUnlock()
	return calls
}
