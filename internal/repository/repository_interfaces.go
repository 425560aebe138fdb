package repository

import (
	"context"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

// LogsRepositoryInterface is the request log store used by the logging service.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

var (
	_ LogsRepositoryInterface = (*LogsRepository)(nil)
	_ LogsRepositoryInterface = (*LogsRepositoryWithCircuitBreaker)(nil)
)
