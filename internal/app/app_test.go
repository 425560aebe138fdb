//go:build !integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/ap-savings-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:   "default config",
			mutate: func(*config.Config) {},
		},
		{
			name: "auth enabled with keys",
			mutate: func(c *config.Config) {
				c.Auth = config.AuthConfig{Enabled: true, APIKeys: map[string]bool{"test-key": true}}
			},
		},
		{
			name:   "cache disabled",
			mutate: func(c *config.Config) { c.Cache.Size = 0 },
		},
		{
			name:   "plain theme",
			mutate: func(c *config.Config) { c.Page.Theme = "plain" },
		},
		{
			name: "auth enabled without keys",
			mutate: func(c *config.Config) {
				c.Auth = config.AuthConfig{Enabled: true}
			},
			wantErr: true,
		},
		{
			name:    "default rate outside domain",
			mutate:  func(c *config.Config) { c.Estimator.DefaultTargetApRate = 0.5 },
			wantErr: true,
		},
		{
			name:    "missing presets file",
			mutate:  func(c *config.Config) { c.Estimator.PresetsFile = "does-not-exist.yaml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			application, err := InitializeApp(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, application)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, application.Router)
			assert.NoError(t, application.Close(context.Background()))
		})
	}
}

func TestInitializeApp_ServesEstimate(t *testing.T) {
	application, err := InitializeApp(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close(context.Background()) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/estimate?target_ap_rate=0.03&cost_per_day=15", nil)
	application.Router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			AnnualSavingsUSD float64 `json:"annual_savings_usd"`
			Headline         string  `json:"headline"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 1_299_775_950, body.Data.AnnualSavingsUSD, 1)
	assert.Equal(t, "$1.30B", body.Data.Headline)
}

func TestInitializeApp_ServesPage(t *testing.T) {
	application, err := InitializeApp(testConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close(context.Background()) })

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "$1.30B")
	assert.Contains(t, w.Body.String(), "Dosing Down, DOGE-ing Up")
}

func TestInitializeApp_PresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	data := []byte("presets:\n  - name: Generic\n    cost_per_day: 3\n  - name: Specialty\n    cost_per_day: 42\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg := testConfig()
	cfg.Estimator.PresetsFile = path

	application, err := InitializeApp(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close(context.Background()) })

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/parameters", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Specialty"`)
	assert.Contains(t, w.Body.String(), `"cost_per_day":42`)
}

func TestApp_Close_Nil(t *testing.T) {
	application := &App{}
	assert.NoError(t, application.Close(context.Background()))
}

func TestInitializeApp_OwnsRateLimiter(t *testing.T) {
	application, err := InitializeApp(testConfig())
	require.NoError(t, err)
	require.NotNil(t, application.limiter)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/estimate?target_ap_rate=0.05", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rate_limiter":{"visitors":0}`)

	w = httptest.NewRecorder()
	application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/parameters", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))

	limiter := application.limiter
	require.NoError(t, application.Close(context.Background()))
	assert.NotPanics(t, limiter.Stop, "limiter was already stopped by Close")
}
