package execution

import (
	"context"
	"encoding/json"
	"github.com/martiny880/ooo-dashboard/internal/adapter/webhook"
	"sync"
)

var _ webhookSender = &webhookSenderMock{}

type webhookSenderMock struct {
	ConfiguredFunc func() bool
	SendFunc       func(ctx context.Context, p webhook.Payload) (json.RawMessage, error)

	calls struct {
		Configured []struct{}
		Send []struct {
			Ctx context.Context
			P   webhook.Payload
		}
	}
	lockConfigured sync.RWMutex
	lockSend       sync.RWMutex
}

func (mock *webhookSenderMock) Configured() bool {
	if mock.ConfiguredFunc == nil {
		panic("webhookSenderMock.ConfiguredFunc: method is nil but webhookSender.Configured was just called")
	}
	mock.lockConfigured.Lock()
	mock.calls.Configured = append(mock.calls.Configured, struct{}{})
	mock.lockConfigured.Unlock()
	return mock.ConfiguredFunc()
}

func (mock *webhookSenderMock) ConfiguredCalls() []struct{} {
	mock.lockConfigured.RLock()
	calls := mock.calls.Configured
	mock.lockConfigured.RUnlock()
	return calls
}

func (mock *webhookSenderMock) Send(ctx context.Context, p webhook.Payload) (json.RawMessage, error) {
	if mock.SendFunc == nil {
		panic("webhookSenderMock.SendFunc: method is nil but webhookSender.Send was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   webhook.Payload
	}{Ctx: ctx, P: p}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, p)
}

func (mock *webhookSenderMock) SendCalls() []struct {
	Ctx context.Context
	P   webhook.Payload
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
