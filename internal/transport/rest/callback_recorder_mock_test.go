package rest

import (
	"context"
	"github.com/martiny880/ooo-dashboard/internal/domain"
	"sync"
)

var _ callbackRecorder = &callbackRecorderMock{}

type callbackRecorderMock struct {
	RecordFunc func(ctx context.Context, rec domain.AuditRecord)

	calls struct {
		Record []struct {
			Ctx context.Context
			Rec domain.AuditRecord
		}
	}
	lockRecord sync.RWMutex
}

func (mock *callbackRecorderMock) Record(ctx context.Context, rec domain.AuditRecord) {
	if mock.RecordFunc == nil {
		panic("callbackRecorderMock.RecordFunc: method is nil but callbackRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.AuditRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, rec)
}

func (mock *callbackRecorderMock) RecordCalls() []struct {
	Ctx context.Context
	Rec domain.AuditRecord
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
