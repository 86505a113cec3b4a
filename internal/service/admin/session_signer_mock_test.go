package admin

import (
	"sync"
	"time"
)

var _ sessionSigner = &sessionSignerMock{}

type sessionSignerMock struct {
	IssueFunc  func() (string, time.Time, error)
	VerifyFunc func(value string) error

	calls struct {
		Issue []struct {
		}
		Verify []struct {
			Value string
		}
	}
	lockIssue  sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *sessionSignerMock) Issue() (string, time.Time, error) {
	if mock.IssueFunc == nil {
		panic("sessionSignerMock.IssueFunc: method is nil but sessionSigner.Issue was just called")
	}
	callInfo := struct {
	}{}
	mock.lockIssue.Lock()
	mock.calls.Issue = append(mock.calls.Issue, callInfo)
	mock.lockIssue.Unlock()
	return mock.IssueFunc()
}

func (mock *sessionSignerMock) IssueCalls() []struct {
} {
	mock.lockIssue.RLock()
	calls := mock.calls.Issue
	mock.lockIssue.RUnlock()
	return calls
}

func (mock *sessionSignerMock) Verify(value string) error {
	if mock.VerifyFunc == nil {
		panic("sessionSignerMock.VerifyFunc: method is nil but sessionSigner.Verify was just called")
	}
	callInfo := struct {
		Value string
	}{Value: value}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(value)
}

func (mock *sessionSignerMock) VerifyCalls() []struct {
	Value string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
