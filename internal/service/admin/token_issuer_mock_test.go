package admin

import (
	"github.com/heartmarshall/crm-backend/internal/auth"
	"sync"
	"time"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateImpersonationTokenFunc func(id auth.Identity, ttl time.Duration) (string, time.Time, error)

	calls struct {
		GenerateImpersonationToken []struct {
			Id  auth.Identity
			Ttl time.Duration
		}
	}
	lockGenerateImpersonationToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateImpersonationToken(id auth.Identity, ttl time.Duration) (string, time.Time, error) {
	if mock.GenerateImpersonationTokenFunc == nil {
		panic("tokenIssuerMock.GenerateImpersonationTokenFunc: method is nil but tokenIssuer.GenerateImpersonationToken was just called")
	}
	callInfo := struct {
		Id  auth.Identity
		Ttl time.Duration
	}{Id: id, Ttl: ttl}
	mock.lockGenerateImpersonationToken.Lock()
	mock.calls.GenerateImpersonationToken = append(mock.calls.GenerateImpersonationToken, callInfo)
	mock.lockGenerateImpersonationToken.Unlock()
	return mock.GenerateImpersonationTokenFunc(id, ttl)
}

func (mock *tokenIssuerMock) GenerateImpersonationTokenCalls() []struct {
	Id  auth.Identity
	Ttl time.Duration
} {
	mock.lockGenerateImpersonationToken.RLock()
	calls := mock.calls.GenerateImpersonationToken
	mock.lockGenerateImpersonationToken.RUnlock()
	return calls
}
