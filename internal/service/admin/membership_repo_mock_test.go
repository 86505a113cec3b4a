package admin

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ membershipRepo = &membershipRepoMock{}

type membershipRepoMock struct {
	ListActiveByUsersFunc func(ctx context.Context, userIDs []uuid.UUID) ([]domain.Membership, error)
	DeactivateFunc        func(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) error

	calls struct {
		ListActiveByUsers []struct {
			Ctx     context.Context
			UserIDs []uuid.UUID
		}
		Deactivate []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			UserID uuid.UUID
		}
	}
	lockListActiveByUsers sync.RWMutex
	lockDeactivate        sync.RWMutex
}

func (mock *membershipRepoMock) ListActiveByUsers(ctx context.Context, userIDs []uuid.UUID) ([]domain.Membership, error) {
	if mock.ListActiveByUsersFunc == nil {
		panic("membershipRepoMock.ListActiveByUsersFunc: method is nil but membershipRepo.ListActiveByUsers was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserIDs []uuid.UUID
	}{Ctx: ctx, UserIDs: userIDs}
	mock.lockListActiveByUsers.Lock()
	mock.calls.ListActiveByUsers = append(mock.calls.ListActiveByUsers, callInfo)
	mock.lockListActiveByUsers.Unlock()
	return mock.ListActiveByUsersFunc(ctx, userIDs)
}

func (mock *membershipRepoMock) ListActiveByUsersCalls() []struct {
	Ctx     context.Context
	UserIDs []uuid.UUID
} {
	mock.lockListActiveByUsers.RLock()
	calls := mock.calls.ListActiveByUsers
	mock.lockListActiveByUsers.RUnlock()
	return calls
}

func (mock *membershipRepoMock) Deactivate(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) error {
	if mock.DeactivateFunc == nil {
		panic("membershipRepoMock.DeactivateFunc: method is nil but membershipRepo.Deactivate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, OrgID: orgID, UserID: userID}
	mock.lockDeactivate.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, callInfo)
	mock.lockDeactivate.Unlock()
	return mock.DeactivateFunc(ctx, orgID, userID)
}

func (mock *membershipRepoMock) DeactivateCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockDeactivate.RLock()
	calls := mock.calls.Deactivate
	mock.lockDeactivate.RUnlock()
	return calls
}
