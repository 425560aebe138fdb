// Package circuitbreaker stops calling a failing dependency until it has had time to recover.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/ap-savings-service/internal/logger"
	"github.com/guttosm/ap-savings-service/internal/metrics"
)

// ErrCircuitOpen is returned without calling the protected function while the circuit is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the circuit breaker state.
type State int

const (
	// StateClosed passes calls through.
	StateClosed State = iota
	// StateOpen rejects calls until Timeout has elapsed since the last failure.
	StateOpen
	// StateHalfOpen lets calls through to probe recovery.
	StateHalfOpen
)

// String returns the state name used in logs, metrics and readiness output.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker thresholds.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the number of consecutive half-open successes that closes it again.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	// Name identifies the breaker in logs and metrics.
	Name string
}

// DefaultConfig returns the thresholds used for the request log sink.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker implements the closed/open/half-open state machine.
type CircuitBreaker struct {
	config          Config
	mu              sync.RWMutex
	state           State
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	now             func() time.Time
}

// New creates a closed circuit breaker. Non-positive thresholds fall back to DefaultConfig values.
func New(config Config) *CircuitBreaker {
	def := DefaultConfig()
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = def.FailureThreshold
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = def.SuccessThreshold
	}
	if config.Timeout <= 0 {
		config.Timeout = def.Timeout
	}
	if config.Name == "" {
		config.Name = def.Name
	}

	cb := &CircuitBreaker{config: config, state: StateClosed, now: time.Now}
	metrics.SetCircuitBreakerState(config.Name, int(StateClosed))
	return cb
}

// Execute runs fn unless the circuit is open.
// A context that is already done short-circuits without counting as a failure,
// and errors caused by the caller's cancellation are not counted either.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch {
	case err == nil:
		cb.onSuccess()
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		// caller gave up; says nothing about the dependency
	default:
		cb.onFailure()
	}
	return err
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.lastFailureTime) < cb.config.Timeout {
		return false
	}
	cb.successCount = 0
	cb.setState(StateHalfOpen)
	return true
}

func (cb *CircuitBreaker) onFailure() {
	cb.failureCount++
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateClosed:
		if cb.failureCount >= cb.config.FailureThreshold {
			cb.setState(StateOpen)
		}
	case StateHalfOpen:
		cb.failureCount = cb.config.FailureThreshold
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) onSuccess() {
	cb.failureCount = 0
	if cb.state != StateHalfOpen {
		return
	}
	cb.successCount++
	if cb.successCount >= cb.config.SuccessThreshold {
		cb.successCount = 0
		cb.setState(StateClosed)
	}
}

// setState must be called with mu held.
func (cb *CircuitBreaker) setState(s State) {
	if cb.state == s {
		return
	}
	prev := cb.state
	cb.state = s
	metrics.SetCircuitBreakerState(cb.config.Name, int(s))

	log := logger.Logger()
	event := log.Info()
	if s == StateOpen {
		event = log.Warn().Int("failure_count", cb.failureCount)
	}
	event.
		Str("circuit_breaker", cb.config.Name).
		Str("from", prev.String()).
		Str("to", s.String()).
		Msg("Circuit breaker state changed")
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether calls are currently being rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// Stats is a point-in-time snapshot of a circuit breaker.
type Stats struct {
	Name         string    `json:"name"`
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"is_healthy"`
}

// GetStats returns current statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		Name:         cb.config.Name,
		State:        cb.state.String(),
		FailureCount: cb.failureCount,
		SuccessCount: cb.successCount,
		LastFailure:  cb.lastFailureTime,
		IsHealthy:    cb.state == StateClosed,
	}
}
