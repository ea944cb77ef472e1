package token

import (
	"context"
	"sync"
)

var _ secretRepo = &secretRepoMock{}

type secretRepoMock struct {
	DeleteFunc func(ctx context.Context, userID string, provider string) error
	GetFunc    func(ctx context.Context, userID string, provider string) (string, error)
	PutFunc    func(ctx context.Context, userID string, provider string, encrypted string) error

	calls struct {
		Delete []struct {
			Ctx      context.Context
			UserID   string
			Provider string
		}
		Get []struct {
			Ctx      context.Context
			UserID   string
			Provider string
		}
		Put []struct {
			Ctx       context.Context
			UserID    string
			Provider  string
			Encrypted string
		}
	}
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockPut    sync.RWMutex
}

func (mock *secretRepoMock) Delete(ctx context.Context, userID string, provider string) error {
	if mock.DeleteFunc == nil {
		panic("secretRepoMock.DeleteFunc: method is nil but secretRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   string
		Provider string
	}{Ctx: ctx, UserID: userID, Provider: provider}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, provider)
}

func (mock *secretRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	UserID   string
	Provider string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *secretRepoMock) Get(ctx context.Context, userID string, provider string) (string, error) {
	if mock.GetFunc == nil {
		panic("secretRepoMock.GetFunc: method is nil but secretRepo.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   string
		Provider string
	}{Ctx: ctx, UserID: userID, Provider: provider}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, provider)
}

func (mock *secretRepoMock) GetCalls() []struct {
	Ctx      context.Context
	UserID   string
	Provider string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *secretRepoMock) Put(ctx context.Context, userID string, provider string, encrypted string) error {
	if mock.PutFunc == nil {
		panic("secretRepoMock.PutFunc: method is nil but secretRepo.Put was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    string
		Provider  string
		Encrypted string
	}{Ctx: ctx, UserID: userID, Provider: provider, Encrypted: encrypted}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, userID, provider, encrypted)
}

func (mock *secretRepoMock) PutCalls() []struct {
	Ctx       context.Context
	UserID    string
	Provider  string
	Encrypted string
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}
