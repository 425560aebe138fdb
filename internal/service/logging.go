package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/repository"
)

const (
	defaultLogQueryLimit = 100
	maxLogQueryLimit     = 1000
	maxLogMessageLength  = 2048
)

// ErrNilLogEntry is returned when CreateLog receives a nil entry.
var ErrNilLogEntry = errors.New("log entry is nil")

// LoggingService writes and reads request logs in the optional log sink.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService over a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a logging service backed by repo.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{repo: repo}
}

// CreateLog normalizes and stores one entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if entry == nil {
		return ErrNilLogEntry
	}
	normalizeEntry(entry)
	return s.repo.Create(ctx, entry)
}

// CreateLogs normalizes and stores entries in bulk, skipping nil entries.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		normalizeEntry(entry)
		batch = append(batch, entry)
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, batch)
}

// QueryLogs returns matching entries, newest first. The limit defaults to 100 and is capped at 1000.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	switch {
	case opts.Limit <= 0:
		opts.Limit = defaultLogQueryLimit
	case opts.Limit > maxLogQueryLimit:
		opts.Limit = maxLogQueryLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	opts.Level = strings.ToLower(opts.Level)
	return s.repo.Query(ctx, opts)
}

// CountLogs returns the number of matching entries.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	opts.Level = strings.ToLower(opts.Level)
	opts.Limit, opts.Skip = 0, 0
	return s.repo.Count(ctx, opts)
}

func normalizeEntry(entry *model.LogEntry) {
	entry.Level = strings.ToLower(strings.TrimSpace(entry.Level))
	if entry.Level == "" {
		entry.Level = "info"
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if len(entry.Message) > maxLogMessageLength {
		entry.Message = entry.Message[:maxLogMessageLength]
	}
}
