//go:build !integration

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/ap-savings-service/internal/domain/dto"
	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/mocks"
	"github.com/guttosm/ap-savings-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	estimator := service.NewSavingsEstimatorService()
	handler := NewHandler(estimator, service.NewPDFReportService(""))
	return NewRouter(handler, NewPageHandler(estimator, PageConfig{}), NewHealthHandler(), DefaultRouterConfig())
}

func setupRouterWithMocks(t *testing.T) (*gin.Engine, *mocks.MockSavingsEstimator, *mocks.MockReportGenerator) {
	estimator := mocks.NewMockSavingsEstimator(t)
	reports := &mocks.MockReportGenerator{}
	t.Cleanup(func() { reports.AssertExpectations(t) })

	handler := NewHandler(estimator, reports, WithClock(func() time.Time {
		return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	}))
	return NewRouter(handler, nil, NewHealthHandler(), DefaultRouterConfig()), estimator, reports
}

func decodeSuccess[T any](t *testing.T, w *httptest.ResponseRecorder) (dto.SuccessResponse, T) {
	t.Helper()

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	var data T
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &data))
	return resp, data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestEstimateSavings(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "clinical target at mid-range cost",
			query:          "target_ap_rate=0.03&cost_per_day=15",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp, estimate := decodeSuccess[model.SavingsEstimate](t, w)
				assert.NotEmpty(t, resp.RequestID)
				assert.InDelta(t, 1_299_775_950, estimate.AnnualSavingsUSD, 1e-3)
				assert.Equal(t, "$1.30B", estimate.Headline)
				assert.Equal(t, model.LabelSavings, estimate.Label)
				assert.Equal(t, "By reducing AP drug rate from 22.6% to 3.0% at $15/day drug cost", estimate.Summary)
			},
		},
		{
			name:           "target equal to current rate",
			query:          "target_ap_rate=0.2262&cost_per_day=50",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				_, estimate := decodeSuccess[model.SavingsEstimate](t, w)
				assert.Zero(t, estimate.AnnualSavingsUSD)
				assert.Equal(t, "$0.00B", estimate.Headline)
			},
		},
		{
			name:           "target above current rate is a cost increase",
			query:          "target_ap_rate=0.25&cost_per_day=3",
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				_, estimate := decodeSuccess[model.SavingsEstimate](t, w)
				assert.InDelta(t, -31_533_810, estimate.AnnualSavingsUSD, 1e-3)
				assert.True(t, estimate.IsCostIncrease)
				assert.Equal(t, "-$0.03B", estimate.Headline)
				assert.Equal(t, model.LabelCostIncrease, estimate.Label)
			},
		},
		{
			name:           "rate out of range",
			query:          "target_ap_rate=0.5&cost_per_day=15",
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, "target_ap_rate", resp.Details["field"])
				assert.Equal(t, "0.25", resp.Details["max"])
			},
		},
		{
			name:           "cost out of range",
			query:          "target_ap_rate=0.03&cost_per_day=51",
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "cost_per_day", decodeError(t, w).Details["field"])
			},
		},
		{
			name:           "missing parameters",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeError(t, w)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, "Invalid query", resp.Message)
			},
		},
		{
			name:           "non-numeric rate",
			query:          "target_ap_rate=low&cost_per_day=15",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/estimate?"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestEstimateSavingsJSON(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{"valid body", `{"target_ap_rate": 0.01, "cost_per_day": 50}`, http.StatusOK, ""},
		{"missing cost", `{"target_ap_rate": 0.01}`, http.StatusBadRequest, "Invalid request body"},
		{"malformed json", `{"target_ap_rate": }`, http.StatusBadRequest, "Invalid request body"},
		{"out of range", `{"target_ap_rate": 0.001, "cost_per_day": 50}`, http.StatusBadRequest, "Input is outside the supported range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/estimate", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				_, estimate := decodeSuccess[model.SavingsEstimate](t, w)
				assert.InDelta(t, 4_774_236_500, estimate.AnnualSavingsUSD, 1e-3)
				assert.Equal(t, "$4.77B", estimate.Headline)
				return
			}
			assert.Equal(t, tt.expectedMsg, decodeError(t, w).Message)
		})
	}
}

func TestEstimateSavings_GETAndPOSTAgree(t *testing.T) {
	router := setupRouter()

	get := httptest.NewRecorder()
	router.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/api/estimate?target_ap_rate=0.1&cost_per_day=7", nil))

	req := httptest.NewRequest(http.MethodPost, "/api/estimate", bytes.NewBufferString(`{"target_ap_rate":0.1,"cost_per_day":7}`))
	req.Header.Set("Content-Type", "application/json")
	post := httptest.NewRecorder()
	router.ServeHTTP(post, req)

	_, fromGet := decodeSuccess[model.SavingsEstimate](t, get)
	_, fromPost := decodeSuccess[model.SavingsEstimate](t, post)
	assert.Equal(t, fromGet, fromPost)
}

func TestEstimateSavings_ServiceError(t *testing.T) {
	router, estimator, _ := setupRouterWithMocks(t)
	estimator.On("Estimate", model.SavingsInput{TargetApRate: 0.03, CostPerDay: 15}).
		Return(model.SavingsEstimate{}, errors.New("unexpected"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/estimate?target_ap_rate=0.03&cost_per_day=15", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, dto.ErrCodeInternal, decodeError(t, w).Error)
}

func TestGetParameters(t *testing.T) {
	presets := []model.CostPreset{{Name: "Only", CostPerDay: 9}}
	estimator := service.NewSavingsEstimatorService()
	handler := NewHandler(estimator, nil,
		WithPresets(presets),
		WithDefaults(model.SavingsInput{TargetApRate: 0.05, CostPerDay: 9}))
	router := NewRouter(handler, nil, nil, DefaultRouterConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/parameters", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, params := decodeSuccess[dto.ParametersResponse](t, w)
	assert.Equal(t, model.TotalResidents, params.TotalResidents)
	assert.Equal(t, model.CurrentApRate, params.CurrentApRate)
	assert.Equal(t, model.DaysPerYear, params.DaysPerYear)
	assert.Equal(t, model.TargetApRateDomain, params.TargetApRateDomain)
	assert.Equal(t, model.CostPerDayDomain, params.CostPerDayDomain)
	assert.Equal(t, 0.05, params.DefaultTargetApRate)
	assert.Equal(t, 9, params.DefaultCostPerDay)
	assert.Equal(t, presets, params.CostPresets)
	assert.Equal(t, model.AboutTheData, params.AboutTheData)
}

func TestCompareCostTiers(t *testing.T) {
	router := setupRouter()

	t.Run("one estimate per preset", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/compare?target_ap_rate=0.03", nil))

		require.Equal(t, http.StatusOK, w.Code)
		_, comparison := decodeSuccess[dto.ComparisonResponse](t, w)
		assert.Equal(t, 0.03, comparison.TargetApRate)
		require.Len(t, comparison.Tiers, 3)

		wantCosts := []int{3, 15, 50}
		for i, tier := range comparison.Tiers {
			assert.Equal(t, wantCosts[i], tier.Preset.CostPerDay)
			assert.Equal(t, wantCosts[i], tier.Estimate.CostPerDay)
		}
		assert.InDelta(t, 259_955_190, comparison.Tiers[0].Estimate.AnnualSavingsUSD, 1e-3)
		assert.InDelta(t, 1_299_775_950, comparison.Tiers[1].Estimate.AnnualSavingsUSD, 1e-3)
		assert.InDelta(t, 4_332_586_500, comparison.Tiers[2].Estimate.AnnualSavingsUSD, 1e-3)
	})

	t.Run("missing rate", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/compare", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rate out of range", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/compare?target_ap_rate=0.3", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "target_ap_rate", decodeError(t, w).Details["field"])
	})
}

func TestDownloadReport(t *testing.T) {
	router := setupRouter()

	t.Run("renders pdf attachment", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report.pdf?target_ap_rate=0.03&cost_per_day=15", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), reportFilename)
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
	})

	t.Run("rejects out of range input", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report.pdf?target_ap_rate=0.03&cost_per_day=0", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("disabled without generator", func(t *testing.T) {
		r := NewRouter(NewHandler(service.NewSavingsEstimatorService(), nil), nil, nil, DefaultRouterConfig())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report.pdf?target_ap_rate=0.03&cost_per_day=15", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDownloadReport_GeneratorError(t *testing.T) {
	router, estimator, reports := setupRouterWithMocks(t)

	input := model.SavingsInput{TargetApRate: 0.03, CostPerDay: 15}
	estimate := model.SavingsEstimate{TargetApRate: 0.03, CostPerDay: 15}
	tiers := []model.SavingsEstimate{estimate}
	estimator.On("Estimate", input).Return(estimate, nil)
	estimator.On("CompareCostTiers", 0.03, mock.Anything).Return(tiers, nil)
	reports.On("GenerateSavingsReport", estimate, tiers, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).
		Return(nil, errors.New("font missing"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report.pdf?target_ap_rate=0.03&cost_per_day=15", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Could not generate the savings report", decodeError(t, w).Message)
}
