package repository

import (
	"context"
	"errors"

	"github.com/guttosm/ap-savings-service/internal/circuitbreaker"
	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

// LogsRepositoryWithCircuitBreaker guards a logs repository with a circuit breaker.
// Writes are dropped silently while the circuit is open; request logging must never
// slow down or fail the calculator.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker wraps repo with cb.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, circuitBreaker: cb}
}

// Create stores one entry.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	}))
}

// CreateMany stores a batch of entries.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	return dropWhenOpen(r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	}))
}

// Query reads entries; an open circuit is reported as circuitbreaker.ErrCircuitOpen.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	var result []model.LogEntry
	err := r.circuitBreaker.Execute(ctx, func() error {
		var qErr error
		result, qErr = r.repo.Query(ctx, opts)
		return qErr
	})
	return result, err
}

// Count counts entries; an open circuit is reported as circuitbreaker.ErrCircuitOpen.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cErr error
		result, cErr = r.repo.Count(ctx, opts)
		return cErr
	})
	return result, err
}

// CircuitBreaker exposes the breaker for readiness reporting.
func (r *LogsRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}
