package mailbox

import (
	"context"
	"sync"
)

var _ tokenSource = &tokenSourceMock{}

type tokenSourceMock struct {
	AccessTokenFunc func(ctx context.Context, userID string, scopes []string) (string, error)

	calls struct {
		AccessToken []struct {
			Ctx    context.Context
			UserID string
			Scopes []string
		}
	}
	lockAccessToken sync.RWMutex
}

func (mock *tokenSourceMock) AccessToken(ctx context.Context, userID string, scopes []string) (string, error) {
	if mock.AccessTokenFunc == nil {
		panic("tokenSourceMock.AccessTokenFunc: method is nil but tokenSource.AccessToken was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Scopes []string
	}{Ctx: ctx, UserID: userID, Scopes: scopes}
	mock.lockAccessToken.Lock()
	mock.calls.AccessToken = append(mock.calls.AccessToken, callInfo)
	mock.lockAccessToken.Unlock()
	return mock.AccessTokenFunc(ctx, userID, scopes)
}

func (mock *tokenSourceMock) AccessTokenCalls() []struct {
	Ctx    context.Context
	UserID string
	Scopes []string
} {
	mock.lockAccessToken.RLock()
	calls := mock.calls.AccessToken
	mock.lockAccessToken.RUnlock()
	return calls
}
