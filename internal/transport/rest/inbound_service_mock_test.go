package rest

import (
	"context"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"github.com/heartmarshall/crm-backend/internal/service/magicextract"
	"sync"
)

var _ inboundService = &inboundServiceMock{}

type inboundServiceMock struct {
	ProcessInboundFunc func(ctx context.Context, slug string, email domain.InboundEmail) (*magicextract.ProcessResult, error)

	calls struct {
		ProcessInbound []struct {
			Ctx   context.Context
			Slug  string
			Email domain.InboundEmail
		}
	}
	lockProcessInbound sync.RWMutex
}

func (mock *inboundServiceMock) ProcessInbound(ctx context.Context, slug string, email domain.InboundEmail) (*magicextract.ProcessResult, error) {
	if mock.ProcessInboundFunc == nil {
		panic("inboundServiceMock.ProcessInboundFunc: method is nil but inboundService.ProcessInbound was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Slug  string
		Email domain.InboundEmail
	}{Ctx: ctx, Slug: slug, Email: email}
	mock.lockProcessInbound.Lock()
	mock.calls.ProcessInbound = append(mock.calls.ProcessInbound, callInfo)
	mock.lockProcessInbound.Unlock()
	return mock.ProcessInboundFunc(ctx, slug, email)
}

func (mock *inboundServiceMock) ProcessInboundCalls() []struct {
	Ctx   context.Context
	Slug  string
	Email domain.InboundEmail
} {
	mock.lockProcessInbound.RLock()
	calls := mock.calls.ProcessInbound
	mock.lockProcessInbound.RUnlock()
	return calls
}
