// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

// MockLogsRepository mocks repository.LogsRepositoryInterface.
type MockLogsRepository struct {
	mock.Mock
}

// NewMockLogsRepository creates a mock that asserts its expectations on cleanup.
func NewMockLogsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogsRepository {
	m := &MockLogsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLogsRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepository) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepository) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLogsRepository) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
