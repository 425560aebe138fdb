//go:build integration

package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/ap-savings-service/internal/testutil"
)

func TestInitializeApp_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uri := sharedMongoURI(t)

	t.Run("mongodb enabled reports ready", func(t *testing.T) {
		cfg := testConfig()
		cfg.Database.URI = uri
		cfg.Database.DatabaseName = testutil.SanitizeDBName(t.Name())
		cfg.Database.Enabled = true

		application, err := InitializeApp(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = application.Close(context.Background()) })

		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	})

	t.Run("redis enabled", func(t *testing.T) {
		ctx := context.Background()
		redisContainer, err := testutil.SetupRedis(ctx)
		require.NoError(t, err)
		t.Cleanup(func() { _ = redisContainer.Cleanup(ctx) })

		cfg := testConfig()
		cfg.Cache.RedisAddr = redisContainer.URI

		application, err := InitializeApp(cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = application.Close(ctx) })
		require.NotNil(t, application.services.RedisCache)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			application.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/estimate?target_ap_rate=0.03&cost_per_day=15", nil))
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"headline":"$1.30B"`)
		}
	})
}
