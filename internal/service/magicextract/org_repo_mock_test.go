package magicextract

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ orgRepo = &orgRepoMock{}

type orgRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Organization, error)
	GetBySlugFunc      func(ctx context.Context, slug string) (*domain.Organization, error)
	GetRulesFunc       func(ctx context.Context, orgID uuid.UUID) ([]domain.ExtractionRule, error)
	LockSettingsFunc   func(ctx context.Context, orgID uuid.UUID) (map[string]any, error)
	UpdateSettingsFunc func(ctx context.Context, orgID uuid.UUID, settings map[string]any) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		GetRules []struct {
			Ctx   context.Context
			OrgID uuid.UUID
		}
		LockSettings []struct {
			Ctx   context.Context
			OrgID uuid.UUID
		}
		UpdateSettings []struct {
			Ctx      context.Context
			OrgID    uuid.UUID
			Settings map[string]any
		}
	}
	lockGetByID        sync.RWMutex
	lockGetBySlug      sync.RWMutex
	lockGetRules       sync.RWMutex
	lockLockSettings   sync.RWMutex
	lockUpdateSettings sync.RWMutex
}

func (mock *orgRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Organization, error) {
	if mock.GetByIDFunc == nil {
		panic("orgRepoMock.GetByIDFunc: method is nil but orgRepo.GetByID was just called")
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

func (mock *orgRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *orgRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Organization, error) {
	if mock.GetBySlugFunc == nil {
		panic("orgRepoMock.GetBySlugFunc: method is nil but orgRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *orgRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *orgRepoMock) GetRules(ctx context.Context, orgID uuid.UUID) ([]domain.ExtractionRule, error) {
	if mock.GetRulesFunc == nil {
		panic("orgRepoMock.GetRulesFunc: method is nil but orgRepo.GetRules was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
	}{Ctx: ctx, OrgID: orgID}
	mock.lockGetRules.Lock()
	mock.calls.GetRules = append(mock.calls.GetRules, callInfo)
	mock.lockGetRules.Unlock()
	return mock.GetRulesFunc(ctx, orgID)
}

func (mock *orgRepoMock) GetRulesCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
} {
	mock.lockGetRules.RLock()
	calls := mock.calls.GetRules
	mock.lockGetRules.RUnlock()
	return calls
}

func (mock *orgRepoMock) LockSettings(ctx context.Context, orgID uuid.UUID) (map[string]any, error) {
	if mock.LockSettingsFunc == nil {
		panic("orgRepoMock.LockSettingsFunc: method is nil but orgRepo.LockSettings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		OrgID uuid.UUID
	}{Ctx: ctx, OrgID: orgID}
	mock.lockLockSettings.Lock()
	mock.calls.LockSettings = append(mock.calls.LockSettings, callInfo)
	mock.lockLockSettings.Unlock()
	return mock.LockSettingsFunc(ctx, orgID)
}

func (mock *orgRepoMock) LockSettingsCalls() []struct {
	Ctx   context.Context
	OrgID uuid.UUID
} {
	mock.lockLockSettings.RLock()
	calls := mock.calls.LockSettings
	mock.lockLockSettings.RUnlock()
	return calls
}

func (mock *orgRepoMock) UpdateSettings(ctx context.Context, orgID uuid.UUID, settings map[string]any) error {
	if mock.UpdateSettingsFunc == nil {
		panic("orgRepoMock.UpdateSettingsFunc: method is nil but orgRepo.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		OrgID    uuid.UUID
		Settings map[string]any
	}{Ctx: ctx, OrgID: orgID, Settings: settings}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, orgID, settings)
}

func (mock *orgRepoMock) UpdateSettingsCalls() []struct {
	Ctx      context.Context
	OrgID    uuid.UUID
	Settings map[string]any
} {
	mock.lockUpdateSettings.RLock()
	calls := mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}
