package service

import (
	"context"
	"time"

	"github.com/rody-huancas/expense-tracker-api/internal/infrastructure/llm"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"gorm.io/gorm"
)

// fakeProvider 可编程的假模型，记录调用次数和最后一次请求
type fakeProvider struct {
	response string
	err      error

	calls   int
	lastReq llm.Request
}

func (f *fakeProvider) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeRecordRepo 内存版仓储，同时记录窗口查询的参数
type fakeRecordRepo struct {
	records []model.ExpenseRecord

	listErr   error
	deleted   []string
	lastSince time.Time
	lastLimit int
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *model.ExpenseRecord) error {
	if f.listErr != nil {
		return f.listErr
	}
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id string) (*model.ExpenseRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			r := f.records[i]
			return &r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecordRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.ExpenseRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastLimit = limit
	var out []model.ExpenseRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRecordRepo) ListAllByUser(ctx context.Context, userID string) ([]model.ExpenseRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.ExpenseRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) ListRecent(ctx context.Context, userID string, since time.Time, limit int) ([]model.ExpenseRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastSince = since
	f.lastLimit = limit
	var out []model.ExpenseRecord
	for _, r := range f.records {
		if r.UserID == userID && !r.CreatedAt.Before(since) {
			out = append(out, r)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return nil
}
