package settings

import (
	"context"
	"github.com/martiny880/ooo-dashboard/internal/service/execution"
	"sync"
)

var _ executor = &executorMock{}

type executorMock struct {
	ExecuteFunc func(ctx context.Context, req execution.Request) (execution.Outcome, error)

	calls struct {
		Execute []struct {
			Ctx context.Context
			Req execution.Request
		}
	}
	lockExecute sync.RWMutex
}

func (mock *executorMock) Execute(ctx context.Context, req execution.Request) (execution.Outcome, error) {
	if mock.ExecuteFunc == nil {
		panic("executorMock.ExecuteFunc: method is nil but executor.Execute was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req execution.Request
	}{Ctx: ctx, Req: req}
	mock.lockExecute.Lock()
	mock.calls.Execute = append(mock.calls.Execute, callInfo)
	mock.lockExecute.Unlock()
	return mock.ExecuteFunc(ctx, req)
}

func (mock *executorMock) ExecuteCalls() []struct {
	Ctx context.Context
	Req execution.Request
} {
	mock.lockExecute.RLock()
	calls := mock.calls.Execute
	mock.lockExecute.RUnlock()
	return calls
}
