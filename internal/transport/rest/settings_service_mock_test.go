package rest

import (
	"context"
	"github.com/martiny880/ooo-dashboard/internal/domain"
	"github.com/martiny880/ooo-dashboard/internal/service/execution"
	"github.com/martiny880/ooo-dashboard/internal/service/settings"
	"sync"
)

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	AuditHistoryFunc        func(ctx context.Context, id domain.UserIdentity, limit int) []domain.AuditRecord
	ClearForwardingFunc     func(ctx context.Context, id domain.UserIdentity, forwardTo string, mode domain.ExecutionMode) (execution.Outcome, error)
	GetForwardingStatusFunc func(ctx context.Context, id domain.UserIdentity) (domain.ForwardingStatus, error)
	GetOofSettingsFunc      func(ctx context.Context, id domain.UserIdentity) (domain.OofSettings, error)
	SearchUsersFunc         func(ctx context.Context, id domain.UserIdentity, query string) ([]domain.DirectoryUser, error)
	SetForwardingFunc       func(ctx context.Context, id domain.UserIdentity, intent domain.ForwardingIntent, mode domain.ExecutionMode) (execution.Outcome, error)
	SetOofSettingsFunc      func(ctx context.Context, id domain.UserIdentity, intent domain.OofIntent, mode domain.ExecutionMode) (execution.Outcome, error)
	SummaryFunc             func(ctx context.Context, id domain.UserIdentity) (settings.Summary, error)

	calls struct {
		AuditHistory []struct {
			Ctx   context.Context
			ID    domain.UserIdentity
			Limit int
		}
		ClearForwarding []struct {
			Ctx       context.Context
			ID        domain.UserIdentity
			ForwardTo string
			Mode      domain.ExecutionMode
		}
		GetForwardingStatus []struct {
			Ctx context.Context
			ID  domain.UserIdentity
		}
		GetOofSettings []struct {
			Ctx context.Context
			ID  domain.UserIdentity
		}
		SearchUsers []struct {
			Ctx   context.Context
			ID    domain.UserIdentity
			Query string
		}
		SetForwarding []struct {
			Ctx    context.Context
			ID     domain.UserIdentity
			Intent domain.ForwardingIntent
			Mode   domain.ExecutionMode
		}
		SetOofSettings []struct {
			Ctx    context.Context
			ID     domain.UserIdentity
			Intent domain.OofIntent
			Mode   domain.ExecutionMode
		}
		Summary []struct {
			Ctx context.Context
			ID  domain.UserIdentity
		}
	}
	lockAuditHistory        sync.RWMutex
	lockClearForwarding     sync.RWMutex
	lockGetForwardingStatus sync.RWMutex
	lockGetOofSettings      sync.RWMutex
	lockSearchUsers         sync.RWMutex
	lockSetForwarding       sync.RWMutex
	lockSetOofSettings      sync.RWMutex
	lockSummary             sync.RWMutex
}

func (mock *settingsServiceMock) AuditHistory(ctx context.Context, id domain.UserIdentity, limit int) []domain.AuditRecord {
	if mock.AuditHistoryFunc == nil {
		panic("settingsServiceMock.AuditHistoryFunc: method is nil but settingsService.AuditHistory was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    domain.UserIdentity
		Limit int
	}{Ctx: ctx, ID: id, Limit: limit}
	mock.lockAuditHistory.Lock()
	mock.calls.AuditHistory = append(mock.calls.AuditHistory, callInfo)
	mock.lockAuditHistory.Unlock()
	return mock.AuditHistoryFunc(ctx, id, limit)
}

func (mock *settingsServiceMock) AuditHistoryCalls() []struct {
	Ctx   context.Context
	ID    domain.UserIdentity
	Limit int
} {
	mock.lockAuditHistory.RLock()
	calls := mock.calls.AuditHistory
	mock.lockAuditHistory.RUnlock()
	return calls
}

func (mock *settingsServiceMock) ClearForwarding(ctx context.Context, id domain.UserIdentity, forwardTo string, mode domain.ExecutionMode) (execution.Outcome, error) {
	if mock.ClearForwardingFunc == nil {
		panic("settingsServiceMock.ClearForwardingFunc: method is nil but settingsService.ClearForwarding was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        domain.UserIdentity
		ForwardTo string
		Mode      domain.ExecutionMode
	}{Ctx: ctx, ID: id, ForwardTo: forwardTo, Mode: mode}
	mock.lockClearForwarding.Lock()
	mock.calls.ClearForwarding = append(mock.calls.ClearForwarding, callInfo)
	mock.lockClearForwarding.Unlock()
	return mock.ClearForwardingFunc(ctx, id, forwardTo, mode)
}

func (mock *settingsServiceMock) ClearForwardingCalls() []struct {
	Ctx       context.Context
	ID        domain.UserIdentity
	ForwardTo string
	Mode      domain.ExecutionMode
} {
	mock.lockClearForwarding.RLock()
	calls := mock.calls.ClearForwarding
	mock.lockClearForwarding.RUnlock()
	return calls
}

func (mock *settingsServiceMock) GetForwardingStatus(ctx context.Context, id domain.UserIdentity) (domain.ForwardingStatus, error) {
	if mock.GetForwardingStatusFunc == nil {
		panic("settingsServiceMock.GetForwardingStatusFunc: method is nil but settingsService.GetForwardingStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.UserIdentity
	}{Ctx: ctx, ID: id}
	mock.lockGetForwardingStatus.Lock()
	mock.calls.GetForwardingStatus = append(mock.calls.GetForwardingStatus, callInfo)
	mock.lockGetForwardingStatus.Unlock()
	return mock.GetForwardingStatusFunc(ctx, id)
}

func (mock *settingsServiceMock) GetForwardingStatusCalls() []struct {
	Ctx context.Context
	ID  domain.UserIdentity
} {
	mock.lockGetForwardingStatus.RLock()
	calls := mock.calls.GetForwardingStatus
	mock.lockGetForwardingStatus.RUnlock()
	return calls
}

func (mock *settingsServiceMock) GetOofSettings(ctx context.Context, id domain.UserIdentity) (domain.OofSettings, error) {
	if mock.GetOofSettingsFunc == nil {
		panic("settingsServiceMock.GetOofSettingsFunc: method is nil but settingsService.GetOofSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.UserIdentity
	}{Ctx: ctx, ID: id}
	mock.lockGetOofSettings.Lock()
	mock.calls.GetOofSettings = append(mock.calls.GetOofSettings, callInfo)
	mock.lockGetOofSettings.Unlock()
	return mock.GetOofSettingsFunc(ctx, id)
}

func (mock *settingsServiceMock) GetOofSettingsCalls() []struct {
	Ctx context.Context
	ID  domain.UserIdentity
} {
	mock.lockGetOofSettings.RLock()
	calls := mock.calls.GetOofSettings
	mock.lockGetOofSettings.RUnlock()
	return calls
}

func (mock *settingsServiceMock) SearchUsers(ctx context.Context, id domain.UserIdentity, query string) ([]domain.DirectoryUser, error) {
	if mock.SearchUsersFunc == nil {
		panic("settingsServiceMock.SearchUsersFunc: method is nil but settingsService.SearchUsers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    domain.UserIdentity
		Query string
	}{Ctx: ctx, ID: id, Query: query}
	mock.lockSearchUsers.Lock()
	mock.calls.SearchUsers = append(mock.calls.SearchUsers, callInfo)
	mock.lockSearchUsers.Unlock()
	return mock.SearchUsersFunc(ctx, id, query)
}

func (mock *settingsServiceMock) SearchUsersCalls() []struct {
	Ctx   context.Context
	ID    domain.UserIdentity
	Query string
} {
	mock.lockSearchUsers.RLock()
	calls := mock.calls.SearchUsers
	mock.lockSearchUsers.RUnlock()
	return calls
}

func (mock *settingsServiceMock) SetForwarding(ctx context.Context, id domain.UserIdentity, intent domain.ForwardingIntent, mode domain.ExecutionMode) (execution.Outcome, error) {
	if mock.SetForwardingFunc == nil {
		panic("settingsServiceMock.SetForwardingFunc: method is nil but settingsService.SetForwarding was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     domain.UserIdentity
		Intent domain.ForwardingIntent
		Mode   domain.ExecutionMode
	}{Ctx: ctx, ID: id, Intent: intent, Mode: mode}
	mock.lockSetForwarding.Lock()
	mock.calls.SetForwarding = append(mock.calls.SetForwarding, callInfo)
	mock.lockSetForwarding.Unlock()
	return mock.SetForwardingFunc(ctx, id, intent, mode)
}

func (mock *settingsServiceMock) SetForwardingCalls() []struct {
	Ctx    context.Context
	ID     domain.UserIdentity
	Intent domain.ForwardingIntent
	Mode   domain.ExecutionMode
} {
	mock.lockSetForwarding.RLock()
	calls := mock.calls.SetForwarding
	mock.lockSetForwarding.RUnlock()
	return calls
}

func (mock *settingsServiceMock) SetOofSettings(ctx context.Context, id domain.UserIdentity, intent domain.OofIntent, mode domain.ExecutionMode) (execution.Outcome, error) {
	if mock.SetOofSettingsFunc == nil {
		panic("settingsServiceMock.SetOofSettingsFunc: method is nil but settingsService.SetOofSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     domain.UserIdentity
		Intent domain.OofIntent
		Mode   domain.ExecutionMode
	}{Ctx: ctx, ID: id, Intent: intent, Mode: mode}
	mock.lockSetOofSettings.Lock()
	mock.calls.SetOofSettings = append(mock.calls.SetOofSettings, callInfo)
	mock.lockSetOofSettings.Unlock()
	return mock.SetOofSettingsFunc(ctx, id, intent, mode)
}

func (mock *settingsServiceMock) SetOofSettingsCalls() []struct {
	Ctx    context.Context
	ID     domain.UserIdentity
	Intent domain.OofIntent
	Mode   domain.ExecutionMode
} {
	mock.lockSetOofSettings.RLock()
	calls := mock.calls.SetOofSettings
	mock.lockSetOofSettings.RUnlock()
	return calls
}

func (mock *settingsServiceMock) Summary(ctx context.Context, id domain.UserIdentity) (settings.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("settingsServiceMock.SummaryFunc: method is nil but settingsService.Summary was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  domain.UserIdentity
	}{Ctx: ctx, ID: id}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx, id)
}

func (mock *settingsServiceMock) SummaryCalls() []struct {
	Ctx context.Context
	ID  domain.UserIdentity
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
