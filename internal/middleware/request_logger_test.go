//go:build !integration

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/mocks"
)

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   string
	}{
		{200, "info"},
		{301, "info"},
		{400, "warn"},
		{404, "warn"},
		{500, "error"},
		{503, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger_WithoutSink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestLogger_ForwardsEntryToSink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	entries := make(chan *model.LogEntry, 1)
	svc := &mocks.MockLoggingService{}
	svc.On("CreateLog", mock.Anything, mock.AnythingOfType("*model.LogEntry")).
		Run(func(args mock.Arguments) {
			entries <- args.Get(1).(*model.LogEntry)
		}).Return(nil)

	InitAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, WriteTimeout: time.Second})
	defer StopAsyncLogger()

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/api/estimate", func(c *gin.Context) {
		c.Set(LogFieldTargetApRate, 0.3)
		c.Set(LogFieldCostPerDay, 15)
		c.Status(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/estimate?target_ap_rate=0.3&cost_per_day=15", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	req.Header.Set("User-Agent", "test-agent")
	router.ServeHTTP(httptest.NewRecorder(), req)

	var entry *model.LogEntry
	select {
	case entry = <-entries:
	case <-time.After(time.Second):
		t.Fatal("log entry was not written")
	}

	require.NotNil(t, entry)
	assert.Equal(t, "warn", entry.Level)
	assert.Equal(t, "req-42", entry.RequestID)
	assert.Equal(t, http.MethodGet, entry.Method)
	assert.Equal(t, "/api/estimate", entry.Path)
	assert.Equal(t, http.StatusBadRequest, entry.StatusCode)
	assert.Equal(t, "test-agent", entry.UserAgent)
	assert.Equal(t, 0.3, entry.Fields[LogFieldTargetApRate])
	assert.Equal(t, 15, entry.Fields[LogFieldCostPerDay])
}
