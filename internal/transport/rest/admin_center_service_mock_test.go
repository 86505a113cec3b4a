package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/crm-backend/internal/domain"
	"sync"
)

var _ adminCenterService = &adminCenterServiceMock{}

type adminCenterServiceMock struct {
	LoginFunc              func(ctx context.Context, code string) (domain.AdminSession, error)
	VerifySessionFunc      func(value string) error
	ListOrganizationsFunc  func(ctx context.Context) ([]domain.AdminOrganization, error)
	ListUsersFunc          func(ctx context.Context) ([]domain.UserWithMemberships, error)
	ImpersonateFunc        func(ctx context.Context, userID uuid.UUID) (domain.Impersonation, error)
	UpdateUserEmailFunc    func(ctx context.Context, userID uuid.UUID, email string) error
	UpdateUserPasswordFunc func(ctx context.Context, userID uuid.UUID, password string) error
	BanUserFunc            func(ctx context.Context, userID uuid.UUID, reason string) error
	UnbanUserFunc          func(ctx context.Context, userID uuid.UUID) error
	UnassignFromOrgFunc    func(ctx context.Context, userID uuid.UUID, orgID uuid.UUID) error
	ListAuditFunc          func(ctx context.Context, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Login []struct {
			Ctx  context.Context
			Code string
		}
		VerifySession []struct {
			Value string
		}
		ListOrganizations []struct {
			Ctx context.Context
		}
		ListUsers []struct {
			Ctx context.Context
		}
		Impersonate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateUserEmail []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Email  string
		}
		UpdateUserPassword []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Password string
		}
		BanUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Reason string
		}
		UnbanUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UnassignFromOrg []struct {
			Ctx    context.Context
			UserID uuid.UUID
			OrgID  uuid.UUID
		}
		ListAudit []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockLogin              sync.RWMutex
	lockVerifySession      sync.RWMutex
	lockListOrganizations  sync.RWMutex
	lockListUsers          sync.RWMutex
	lockImpersonate        sync.RWMutex
	lockUpdateUserEmail    sync.RWMutex
	lockUpdateUserPassword sync.RWMutex
	lockBanUser            sync.RWMutex
	lockUnbanUser          sync.RWMutex
	lockUnassignFromOrg    sync.RWMutex
	lockListAudit          sync.RWMutex
}

func (mock *adminCenterServiceMock) Login(ctx context.Context, code string) (domain.AdminSession, error) {
	if mock.LoginFunc == nil {
		panic("adminCenterServiceMock.LoginFunc: method is nil but adminCenterService.Login was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, code)
}

func (mock *adminCenterServiceMock) LoginCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) VerifySession(value string) error {
	if mock.VerifySessionFunc == nil {
		panic("adminCenterServiceMock.VerifySessionFunc: method is nil but adminCenterService.VerifySession was just called")
	}
	callInfo := struct {
		Value string
	}{Value: value}
	mock.lockVerifySession.Lock()
	mock.calls.VerifySession = append(mock.calls.VerifySession, callInfo)
	mock.lockVerifySession.Unlock()
	return mock.VerifySessionFunc(value)
}

func (mock *adminCenterServiceMock) VerifySessionCalls() []struct {
	Value string
} {
	mock.lockVerifySession.RLock()
	calls := mock.calls.VerifySession
	mock.lockVerifySession.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) ListOrganizations(ctx context.Context) ([]domain.AdminOrganization, error) {
	if mock.ListOrganizationsFunc == nil {
		panic("adminCenterServiceMock.ListOrganizationsFunc: method is nil but adminCenterService.ListOrganizations was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListOrganizations.Lock()
	mock.calls.ListOrganizations = append(mock.calls.ListOrganizations, callInfo)
	mock.lockListOrganizations.Unlock()
	return mock.ListOrganizationsFunc(ctx)
}

func (mock *adminCenterServiceMock) ListOrganizationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListOrganizations.RLock()
	calls := mock.calls.ListOrganizations
	mock.lockListOrganizations.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) ListUsers(ctx context.Context) ([]domain.UserWithMemberships, error) {
	if mock.ListUsersFunc == nil {
		panic("adminCenterServiceMock.ListUsersFunc: method is nil but adminCenterService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx)
}

func (mock *adminCenterServiceMock) ListUsersCalls() []struct {
	Ctx context.Context
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) Impersonate(ctx context.Context, userID uuid.UUID) (domain.Impersonation, error) {
	if mock.ImpersonateFunc == nil {
		panic("adminCenterServiceMock.ImpersonateFunc: method is nil but adminCenterService.Impersonate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockImpersonate.Lock()
	mock.calls.Impersonate = append(mock.calls.Impersonate, callInfo)
	mock.lockImpersonate.Unlock()
	return mock.ImpersonateFunc(ctx, userID)
}

func (mock *adminCenterServiceMock) ImpersonateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockImpersonate.RLock()
	calls := mock.calls.Impersonate
	mock.lockImpersonate.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) UpdateUserEmail(ctx context.Context, userID uuid.UUID, email string) error {
	if mock.UpdateUserEmailFunc == nil {
		panic("adminCenterServiceMock.UpdateUserEmailFunc: method is nil but adminCenterService.UpdateUserEmail was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Email  string
	}{Ctx: ctx, UserID: userID, Email: email}
	mock.lockUpdateUserEmail.Lock()
	mock.calls.UpdateUserEmail = append(mock.calls.UpdateUserEmail, callInfo)
	mock.lockUpdateUserEmail.Unlock()
	return mock.UpdateUserEmailFunc(ctx, userID, email)
}

func (mock *adminCenterServiceMock) UpdateUserEmailCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Email  string
} {
	mock.lockUpdateUserEmail.RLock()
	calls := mock.calls.UpdateUserEmail
	mock.lockUpdateUserEmail.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) error {
	if mock.UpdateUserPasswordFunc == nil {
		panic("adminCenterServiceMock.UpdateUserPasswordFunc: method is nil but adminCenterService.UpdateUserPassword was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Password string
	}{Ctx: ctx, UserID: userID, Password: password}
	mock.lockUpdateUserPassword.Lock()
	mock.calls.UpdateUserPassword = append(mock.calls.UpdateUserPassword, callInfo)
	mock.lockUpdateUserPassword.Unlock()
	return mock.UpdateUserPasswordFunc(ctx, userID, password)
}

func (mock *adminCenterServiceMock) UpdateUserPasswordCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Password string
} {
	mock.lockUpdateUserPassword.RLock()
	calls := mock.calls.UpdateUserPassword
	mock.lockUpdateUserPassword.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) BanUser(ctx context.Context, userID uuid.UUID, reason string) error {
	if mock.BanUserFunc == nil {
		panic("adminCenterServiceMock.BanUserFunc: method is nil but adminCenterService.BanUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Reason string
	}{Ctx: ctx, UserID: userID, Reason: reason}
	mock.lockBanUser.Lock()
	mock.calls.BanUser = append(mock.calls.BanUser, callInfo)
	mock.lockBanUser.Unlock()
	return mock.BanUserFunc(ctx, userID, reason)
}

func (mock *adminCenterServiceMock) BanUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Reason string
} {
	mock.lockBanUser.RLock()
	calls := mock.calls.BanUser
	mock.lockBanUser.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) UnbanUser(ctx context.Context, userID uuid.UUID) error {
	if mock.UnbanUserFunc == nil {
		panic("adminCenterServiceMock.UnbanUserFunc: method is nil but adminCenterService.UnbanUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockUnbanUser.Lock()
	mock.calls.UnbanUser = append(mock.calls.UnbanUser, callInfo)
	mock.lockUnbanUser.Unlock()
	return mock.UnbanUserFunc(ctx, userID)
}

func (mock *adminCenterServiceMock) UnbanUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockUnbanUser.RLock()
	calls := mock.calls.UnbanUser
	mock.lockUnbanUser.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) UnassignFromOrg(ctx context.Context, userID uuid.UUID, orgID uuid.UUID) error {
	if mock.UnassignFromOrgFunc == nil {
		panic("adminCenterServiceMock.UnassignFromOrgFunc: method is nil but adminCenterService.UnassignFromOrg was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		OrgID  uuid.UUID
	}{Ctx: ctx, UserID: userID, OrgID: orgID}
	mock.lockUnassignFromOrg.Lock()
	mock.calls.UnassignFromOrg = append(mock.calls.UnassignFromOrg, callInfo)
	mock.lockUnassignFromOrg.Unlock()
	return mock.UnassignFromOrgFunc(ctx, userID, orgID)
}

func (mock *adminCenterServiceMock) UnassignFromOrgCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	OrgID  uuid.UUID
} {
	mock.lockUnassignFromOrg.RLock()
	calls := mock.calls.UnassignFromOrg
	mock.lockUnassignFromOrg.RUnlock()
	return calls
}

func (mock *adminCenterServiceMock) ListAudit(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if mock.ListAuditFunc == nil {
		panic("adminCenterServiceMock.ListAuditFunc: method is nil but adminCenterService.ListAudit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListAudit.Lock()
	mock.calls.ListAudit = append(mock.calls.ListAudit, callInfo)
	mock.lockListAudit.Unlock()
	return mock.ListAuditFunc(ctx, limit)
}

func (mock *adminCenterServiceMock) ListAuditCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListAudit.RLock()
	calls := mock.calls.ListAudit
	mock.lockListAudit.RUnlock()
	return calls
}
