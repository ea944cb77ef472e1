package settings

import (
	"context"
	"github.com/martiny880/ooo-dashboard/internal/domain"
	"sync"
)

var _ mailboxReader = &mailboxReaderMock{}

type mailboxReaderMock struct {
	GetForwardingStatusFunc func(ctx context.Context, userID string) (domain.ForwardingStatus, error)
	GetOofSettingsFunc      func(ctx context.Context, userID string) (domain.OofSettings, error)
	SearchUsersFunc         func(ctx context.Context, userID string, query string) ([]domain.DirectoryUser, error)

	calls struct {
		GetForwardingStatus []struct {
			Ctx    context.Context
			UserID string
		}
		GetOofSettings []struct {
			Ctx    context.Context
			UserID string
		}
		SearchUsers []struct {
			Ctx    context.Context
			UserID string
			Query  string
		}
	}
	lockGetForwardingStatus sync.RWMutex
	lockGetOofSettings      sync.RWMutex
	lockSearchUsers         sync.RWMutex
}

func (mock *mailboxReaderMock) GetForwardingStatus(ctx context.Context, userID string) (domain.ForwardingStatus, error) {
	if mock.GetForwardingStatusFunc == nil {
		panic("mailboxReaderMock.GetForwardingStatusFunc: method is nil but mailboxReader.GetForwardingStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGetForwardingStatus.Lock()
	mock.calls.GetForwardingStatus = append(mock.calls.GetForwardingStatus, callInfo)
	mock.lockGetForwardingStatus.Unlock()
	return mock.GetForwardingStatusFunc(ctx, userID)
}

func (mock *mailboxReaderMock) GetForwardingStatusCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetForwardingStatus.RLock()
	calls := mock.calls.GetForwardingStatus
	mock.lockGetForwardingStatus.RUnlock()
	return calls
}

func (mock *mailboxReaderMock) GetOofSettings(ctx context.Context, userID string) (domain.OofSettings, error) {
	if mock.GetOofSettingsFunc == nil {
		panic("mailboxReaderMock.GetOofSettingsFunc: method is nil but mailboxReader.GetOofSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGetOofSettings.Lock()
	mock.calls.GetOofSettings = append(mock.calls.GetOofSettings, callInfo)
	mock.lockGetOofSettings.Unlock()
	return mock.GetOofSettingsFunc(ctx, userID)
}

func (mock *mailboxReaderMock) GetOofSettingsCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetOofSettings.RLock()
	calls := mock.calls.GetOofSettings
	mock.lockGetOofSettings.RUnlock()
	return calls
}

func (mock *mailboxReaderMock) SearchUsers(ctx context.Context, userID string, query string) ([]domain.DirectoryUser, error) {
	if mock.SearchUsersFunc == nil {
		panic("mailboxReaderMock.SearchUsersFunc: method is nil but mailboxReader.SearchUsers was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Query  string
	}{Ctx: ctx, UserID: userID, Query: query}
	mock.lockSearchUsers.Lock()
	mock.calls.SearchUsers = append(mock.calls.SearchUsers, callInfo)
	mock.lockSearchUsers.Unlock()
	return mock.SearchUsersFunc(ctx, userID, query)
}

func (mock *mailboxReaderMock) SearchUsersCalls() []struct {
	Ctx    context.Context
	UserID string
	Query  string
} {
	mock.lockSearchUsers.RLock()
	calls := mock.calls.SearchUsers
	mock.lockSearchUsers.RUnlock()
	return calls
}
