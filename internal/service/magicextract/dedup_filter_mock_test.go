package magicextract

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ dedupFilter = &dedupFilterMock{}

type dedupFilterMock struct {
	ClaimFunc    func(ctx context.Context, orgID uuid.UUID, messageID string) (domain.DeliveryState, error)
	CompleteFunc func(ctx context.Context, orgID uuid.UUID, messageID string) error
	ForgetFunc   func(ctx context.Context, orgID uuid.UUID, messageID string) error

	calls struct {
		Claim []struct {
			Ctx       context.Context
			OrgID     uuid.UUID
			MessageID string
		}
		Complete []struct {
			Ctx       context.Context
			OrgID     uuid.UUID
			MessageID string
		}
		Forget []struct {
			Ctx       context.Context
			OrgID     uuid.UUID
			MessageID string
		}
	}
	lockClaim    sync.RWMutex
	lockComplete sync.RWMutex
	lockForget   sync.RWMutex
}

func (mock *dedupFilterMock) Claim(ctx context.Context, orgID uuid.UUID, messageID string) (domain.DeliveryState, error) {
	if mock.ClaimFunc == nil {
		panic("dedupFilterMock.ClaimFunc: method is nil but dedupFilter.Claim was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OrgID     uuid.UUID
		MessageID string
	}{Ctx: ctx, OrgID: orgID, MessageID: messageID}
	mock.lockClaim.Lock()
	mock.calls.Claim = append(mock.calls.Claim, callInfo)
	mock.lockClaim.Unlock()
	return mock.ClaimFunc(ctx, orgID, messageID)
}

func (mock *dedupFilterMock) ClaimCalls() []struct {
	Ctx       context.Context
	OrgID     uuid.UUID
	MessageID string
} {
	mock.lockClaim.RLock()
	calls := mock.calls.Claim
	mock.lockClaim.RUnlock()
	return calls
}

func (mock *dedupFilterMock) Complete(ctx context.Context, orgID uuid.UUID, messageID string) error {
	if mock.CompleteFunc == nil {
		panic("dedupFilterMock.CompleteFunc: method is nil but dedupFilter.Complete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OrgID     uuid.UUID
		MessageID string
	}{Ctx: ctx, OrgID: orgID, MessageID: messageID}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, orgID, messageID)
}

func (mock *dedupFilterMock) CompleteCalls() []struct {
	Ctx       context.Context
	OrgID     uuid.UUID
	MessageID string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *dedupFilterMock) Forget(ctx context.Context, orgID uuid.UUID, messageID string) error {
	if mock.ForgetFunc == nil {
		panic("dedupFilterMock.ForgetFunc: method is nil but dedupFilter.Forget was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		OrgID     uuid.UUID
		MessageID string
	}{Ctx: ctx, OrgID: orgID, MessageID: messageID}
	mock.lockForget.Lock()
	mock.calls.Forget = append(mock.calls.Forget, callInfo)
	mock.lockForget.Unlock()
	return mock.ForgetFunc(ctx, orgID, messageID)
}

func (mock *dedupFilterMock) ForgetCalls() []struct {
	Ctx       context.Context
	OrgID     uuid.UUID
	MessageID string
} {
	mock.lockForget.RLock()
	calls := mock.calls.Forget
	mock.lockForget.RUnlock()
	return calls
}
