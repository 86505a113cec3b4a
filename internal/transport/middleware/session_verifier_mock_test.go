package middleware

import (
	"sync"
)

var _ sessionVerifier = &sessionVerifierMock{}

type sessionVerifierMock struct {
	VerifySessionFunc func(value string) error

	calls struct {
		VerifySession []struct {
			Value string
		}
	}
	lockVerifySession sync.RWMutex
}

func (mock *sessionVerifierMock) VerifySession(value string) error {
	if mock.VerifySessionFunc == nil {
		panic("sessionVerifierMock.VerifySessionFunc: method is nil but sessionVerifier.VerifySession was just called")
	}
	callInfo := struct {
		Value string
	}{Value: value}
	mock.lockVerifySession.Lock()
	mock.calls.VerifySession = append(mock.calls.VerifySession, callInfo)
	mock.lockVerifySession.Unlock()
	return mock.VerifySessionFunc(value)
}

func (mock *sessionVerifierMock) VerifySessionCalls() []struct {
	Value string
} {
	mock.lockVerifySession.RLock()
	calls := mock.calls.VerifySession
	mock.lockVerifySession.RUnlock()
	return calls
}
