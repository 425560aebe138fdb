package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ap-savings-service/internal/circuitbreaker"
)

const readinessTimeout = 2 * time.Second

// HealthChecker is a dependency that can report its health.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f(ctx).
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// StatsFunc reports counters shown under "stats" by the readiness probe.
// A nil result is omitted.
type StatsFunc func() map[string]int64

type registeredChecker struct {
	checker  HealthChecker
	optional bool
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	checkers        map[string]registeredChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	stats           map[string]StatsFunc
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]registeredChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		stats:           make(map[string]StatsFunc),
	}
}

// RegisterChecker registers a dependency whose failure makes the service not ready.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = registeredChecker{checker: checker}
}

// RegisterOptionalChecker registers a dependency whose failure only degrades the service.
func (h *HealthHandler) RegisterOptionalChecker(name string, checker HealthChecker) {
	h.checkers[name] = registeredChecker{checker: checker, optional: true}
}

// RegisterStats registers counters reported by readiness. They never affect the status.
func (h *HealthHandler) RegisterStats(name string, fn StatsFunc) {
	if fn == nil {
		return
	}
	h.stats[name] = fn
}

// RegisterCircuitBreaker registers a circuit breaker whose state is reported by readiness.
// An open breaker degrades the service without failing the probe.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb == nil {
		return
	}
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Reports dependency checks and circuit breaker states. Optional dependencies (request-log sink, shared cache) only degrade the service; the calculator keeps working without them.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready (status ok or degraded)"
// @Failure     503 {object} map[string]interface{} "A required dependency is unavailable"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	checks := make(map[string]interface{})

	for name, rc := range h.checkers {
		if err := rc.checker.Check(ctx); err != nil {
			checks[name] = err.Error()
			if rc.optional {
				if code == http.StatusOK {
					status = "degraded"
				}
				continue
			}
			status = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	breakers := make(map[string]circuitbreaker.Stats, len(h.circuitBreakers))
	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		breakers[name] = stats
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy && code == http.StatusOK {
			status = "degraded"
		}
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	body := gin.H{
		"status": status,
		"checks": checks,
	}
	if len(breakers) > 0 {
		body["circuit_breakers"] = breakers
	}
	stats := make(map[string]map[string]int64, len(h.stats))
	for name, fn := range h.stats {
		if s := fn(); s != nil {
			stats[name] = s
		}
	}
	if len(stats) > 0 {
		body["stats"] = stats
	}
	c.JSON(code, body)
}
