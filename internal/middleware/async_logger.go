package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/logger"
	"github.com/guttosm/ap-savings-service/internal/service"
)

// AsyncLoggerConfig holds configuration for the async logger.
type AsyncLoggerConfig struct {
	// BufferSize is the size of the log entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing entries.
	NumWorkers int
	// WriteTimeout bounds a single write to the log sink.
	WriteTimeout time.Duration
}

// DefaultAsyncLoggerConfig returns the default async logger configuration.
func DefaultAsyncLoggerConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncLogger writes request log entries to the logging service from a fixed
// worker pool. Entries are dropped when the buffer is full.
type AsyncLogger struct {
	loggingService service.LoggingService
	entryCh        chan *model.LogEntry
	wg             sync.WaitGroup
	stopCh         chan struct{}
	stopOnce       sync.Once
	writeTimeout   time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncLogger starts the worker pool. It returns nil when loggingService is nil.
func NewAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) *AsyncLogger {
	if loggingService == nil {
		return nil
	}

	def := DefaultAsyncLoggerConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	al := &AsyncLogger{
		loggingService: loggingService,
		entryCh:        make(chan *model.LogEntry, cfg.BufferSize),
		stopCh:         make(chan struct{}),
		writeTimeout:   cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		al.wg.Add(1)
		go al.worker()
	}

	return al
}

func (al *AsyncLogger) worker() {
	defer al.wg.Done()

	for {
		select {
		case entry := <-al.entryCh:
			al.writeEntry(entry)
		case <-al.stopCh:
			for {
				select {
				case entry := <-al.entryCh:
					al.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (al *AsyncLogger) writeEntry(entry *model.LogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), al.writeTimeout)
	defer cancel()

	if err := al.loggingService.CreateLog(ctx, entry); err != nil {
		atomic.AddInt64(&al.errors, 1)
		log := logger.Logger()
		log.Warn().Err(err).Str("request_id", entry.RequestID).Msg("Failed to write async log entry")
		return
	}
	atomic.AddInt64(&al.written, 1)
}

// Log enqueues entry and reports whether it was accepted.
func (al *AsyncLogger) Log(entry *model.LogEntry) bool {
	select {
	case <-al.stopCh:
		atomic.AddInt64(&al.dropped, 1)
		return false
	default:
	}

	select {
	case al.entryCh <- entry:
		atomic.AddInt64(&al.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&al.dropped, 1)
		return false
	}
}

// Stop drains pending entries and waits for the workers to exit.
func (al *AsyncLogger) Stop() {
	al.stopOnce.Do(func() {
		close(al.stopCh)
		al.wg.Wait()
	})
}

// Stats returns counters of enqueued, dropped, written and failed entries.
func (al *AsyncLogger) Stats() (enqueued, dropped, written, errors int64) {
	return atomic.LoadInt64(&al.enqueued),
		atomic.LoadInt64(&al.dropped),
		atomic.LoadInt64(&al.written),
		atomic.LoadInt64(&al.errors)
}

var (
	globalAsyncLogger   *AsyncLogger
	globalAsyncLoggerMu sync.RWMutex
)

// InitAsyncLogger replaces the global async logger, stopping the previous one.
func InitAsyncLogger(loggingService service.LoggingService, cfg AsyncLoggerConfig) {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
	}
	globalAsyncLogger = NewAsyncLogger(loggingService, cfg)
}

// GetAsyncLogger returns the global async logger, or nil when none is running.
func GetAsyncLogger() *AsyncLogger {
	globalAsyncLoggerMu.RLock()
	defer globalAsyncLoggerMu.RUnlock()
	return globalAsyncLogger
}

// StopAsyncLogger drains and clears the global async logger.
func StopAsyncLogger() {
	globalAsyncLoggerMu.Lock()
	defer globalAsyncLoggerMu.Unlock()

	if globalAsyncLogger != nil {
		globalAsyncLogger.Stop()
		globalAsyncLogger = nil
	}
}
