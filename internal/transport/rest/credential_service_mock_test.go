package rest

import (
	"context"
	"sync"
)

var _ credentialService = &credentialServiceMock{}

type credentialServiceMock struct {
	RevokeFunc            func(ctx context.Context, userID string) error
	StoreRefreshTokenFunc func(ctx context.Context, userID string, refreshToken string) error

	calls struct {
		Revoke []struct {
			Ctx    context.Context
			UserID string
		}
		StoreRefreshToken []struct {
			Ctx          context.Context
			UserID       string
			RefreshToken string
		}
	}
	lockRevoke            sync.RWMutex
	lockStoreRefreshToken sync.RWMutex
}

func (mock *credentialServiceMock) Revoke(ctx context.Context, userID string) error {
	if mock.RevokeFunc == nil {
		panic("credentialServiceMock.RevokeFunc: method is nil but credentialService.Revoke was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, userID)
}

func (mock *credentialServiceMock) RevokeCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}

func (mock *credentialServiceMock) StoreRefreshToken(ctx context.Context, userID string, refreshToken string) error {
	if mock.StoreRefreshTokenFunc == nil {
		panic("credentialServiceMock.StoreRefreshTokenFunc: method is nil but credentialService.StoreRefreshToken was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       string
		RefreshToken string
	}{Ctx: ctx, UserID: userID, RefreshToken: refreshToken}
	mock.lockStoreRefreshToken.Lock()
	mock.calls.StoreRefreshToken = append(mock.calls.StoreRefreshToken, callInfo)
	mock.lockStoreRefreshToken.Unlock()
	return mock.StoreRefreshTokenFunc(ctx, userID, refreshToken)
}

func (mock *credentialServiceMock) StoreRefreshTokenCalls() []struct {
	Ctx          context.Context
	UserID       string
	RefreshToken string
} {
	mock.lockStoreRefreshToken.RLock()
	calls := mock.calls.StoreRefreshToken
	mock.lockStoreRefreshToken.RUnlock()
	return calls
}
