package admin

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
	"time"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	ListFunc               func(ctx context.Context) ([]domain.User, error)
	UpdateEmailFunc        func(ctx context.Context, id uuid.UUID, email string) error
	UpdatePasswordHashFunc func(ctx context.Context, id uuid.UUID, hash string) error
	BanFunc                func(ctx context.Context, id uuid.UUID, reason *string, at time.Time) error
	UnbanFunc              func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		UpdateEmail []struct {
			Ctx   context.Context
			Id    uuid.UUID
			Email string
		}
		UpdatePasswordHash []struct {
			Ctx  context.Context
			Id   uuid.UUID
			Hash string
		}
		Ban []struct {
			Ctx    context.Context
			Id     uuid.UUID
			Reason *string
			At     time.Time
		}
		Unban []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID            sync.RWMutex
	lockList               sync.RWMutex
	lockUpdateEmail        sync.RWMutex
	lockUpdatePasswordHash sync.RWMutex
	lockBan                sync.RWMutex
	lockUnban              sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	if mock.UpdateEmailFunc == nil {
		panic("userRepoMock.UpdateEmailFunc: method is nil but userRepo.UpdateEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Id    uuid.UUID
		Email string
	}{Ctx: ctx, Id: id, Email: email}
	mock.lockUpdateEmail.Lock()
	mock.calls.UpdateEmail = append(mock.calls.UpdateEmail, callInfo)
	mock.lockUpdateEmail.Unlock()
	return mock.UpdateEmailFunc(ctx, id, email)
}

func (mock *userRepoMock) UpdateEmailCalls() []struct {
	Ctx   context.Context
	Id    uuid.UUID
	Email string
} {
	mock.lockUpdateEmail.RLock()
	calls := mock.calls.UpdateEmail
	mock.lockUpdateEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	if mock.UpdatePasswordHashFunc == nil {
		panic("userRepoMock.UpdatePasswordHashFunc: method is nil but userRepo.UpdatePasswordHash was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Id   uuid.UUID
		Hash string
	}{Ctx: ctx, Id: id, Hash: hash}
	mock.lockUpdatePasswordHash.Lock()
	mock.calls.UpdatePasswordHash = append(mock.calls.UpdatePasswordHash, callInfo)
	mock.lockUpdatePasswordHash.Unlock()
	return mock.UpdatePasswordHashFunc(ctx, id, hash)
}

func (mock *userRepoMock) UpdatePasswordHashCalls() []struct {
	Ctx  context.Context
	Id   uuid.UUID
	Hash string
} {
	mock.lockUpdatePasswordHash.RLock()
	calls := mock.calls.UpdatePasswordHash
	mock.lockUpdatePasswordHash.RUnlock()
	return calls
}

func (mock *userRepoMock) Ban(ctx context.Context, id uuid.UUID, reason *string, at time.Time) error {
	if mock.BanFunc == nil {
		panic("userRepoMock.BanFunc: method is nil but userRepo.Ban was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Id     uuid.UUID
		Reason *string
		At     time.Time
	}{Ctx: ctx, Id: id, Reason: reason, At: at}
	mock.lockBan.Lock()
	mock.calls.Ban = append(mock.calls.Ban, callInfo)
	mock.lockBan.Unlock()
	return mock.BanFunc(ctx, id, reason, at)
}

func (mock *userRepoMock) BanCalls() []struct {
	Ctx    context.Context
	Id     uuid.UUID
	Reason *string
	At     time.Time
} {
	mock.lockBan.RLock()
	calls := mock.calls.Ban
	mock.lockBan.RUnlock()
	return calls
}

func (mock *userRepoMock) Unban(ctx context.Context, id uuid.UUID) error {
	if mock.UnbanFunc == nil {
		panic("userRepoMock.UnbanFunc: method is nil but userRepo.Unban was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockUnban.Lock()
	mock.calls.Unban = append(mock.calls.Unban, callInfo)
	mock.lockUnban.Unlock()
	return mock.UnbanFunc(ctx, id)
}

func (mock *userRepoMock) UnbanCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockUnban.RLock()
	calls := mock.calls.Unban
	mock.lockUnban.RUnlock()
	return calls
}
