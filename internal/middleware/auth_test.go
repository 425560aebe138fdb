package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/ap-savings-service/internal/domain/dto"
	"github.com/guttosm/ap-savings-service/internal/i18n"
)

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	keys := map[string]bool{"secret": true}

	tests := []struct {
		name        string
		validKeys   map[string]bool
		header      string
		query       string
		wantStatus  int
		wantMessage string
	}{
		{name: "disabled without keys", wantStatus: http.StatusOK},
		{name: "valid header key", validKeys: keys, header: "secret", wantStatus: http.StatusOK},
		{name: "valid query key", validKeys: keys, query: "secret", wantStatus: http.StatusOK},
		{name: "missing key", validKeys: keys, wantStatus: http.StatusUnauthorized, wantMessage: i18n.T(i18n.ErrKeyAPIKeyRequired)},
		{name: "invalid key", validKeys: keys, header: "wrong", wantStatus: http.StatusUnauthorized, wantMessage: i18n.T(i18n.ErrKeyInvalidAPIKey)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(APIKeyAuth(tt.validKeys))
			router.GET("/api/estimate", func(c *gin.Context) { c.Status(http.StatusOK) })

			url := "/api/estimate"
			if tt.query != "" {
				url += "?" + APIKeyQuery + "=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}
