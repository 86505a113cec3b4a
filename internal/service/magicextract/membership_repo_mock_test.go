package magicextract

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ membershipRepo = &membershipRepoMock{}

type membershipRepoMock struct {
	GetRoleFunc func(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (domain.OrgRole, error)

	calls struct {
		GetRole []struct {
			Ctx    context.Context
			OrgID  uuid.UUID
			UserID uuid.UUID
		}
	}
	lockGetRole sync.RWMutex
}

func (mock *membershipRepoMock) GetRole(ctx context.Context, orgID uuid.UUID, userID uuid.UUID) (domain.OrgRole, error) {
	if mock.GetRoleFunc == nil {
		panic("membershipRepoMock.GetRoleFunc: method is nil but membershipRepo.GetRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		OrgID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, OrgID: orgID, UserID: userID}
	mock.lockGetRole.Lock()
	mock.calls.GetRole = append(mock.calls.GetRole, callInfo)
	mock.lockGetRole.Unlock()
	return mock.GetRoleFunc(ctx, orgID, userID)
}

func (mock *membershipRepoMock) GetRoleCalls() []struct {
	Ctx    context.Context
	OrgID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockGetRole.RLock()
	calls := mock.calls.GetRole
	mock.lockGetRole.RUnlock()
	return calls
}
