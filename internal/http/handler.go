package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ap-savings-service/internal/domain/dto"
	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/i18n"
	"github.com/guttosm/ap-savings-service/internal/middleware"
	"github.com/guttosm/ap-savings-service/internal/service"
)

// reportFilename is the attachment name of downloaded PDF reports.
const reportFilename = "ap-savings-report.pdf"

// Handler provides the JSON and PDF endpoints of the calculator API.
type Handler struct {
	estimator service.SavingsEstimator
	reports   service.ReportGenerator
	presets   []model.CostPreset
	defaults  model.SavingsInput
	now       func() time.Time
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithPresets replaces the default cost presets.
func WithPresets(presets []model.CostPreset) HandlerOption {
	return func(h *Handler) {
		if len(presets) > 0 {
			h.presets = presets
		}
	}
}

// WithDefaults sets the inputs reported as defaults by GetParameters.
func WithDefaults(defaults model.SavingsInput) HandlerOption {
	return func(h *Handler) {
		h.defaults = defaults
	}
}

// WithClock sets the time source stamped on generated reports.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// NewHandler creates a Handler. reports may be nil, which disables the PDF endpoint.
func NewHandler(estimator service.SavingsEstimator, reports service.ReportGenerator, opts ...HandlerOption) *Handler {
	h := &Handler{
		estimator: estimator,
		reports:   reports,
		presets:   model.DefaultCostPresets(),
		defaults:  model.DefaultSavingsInput(),
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// EstimateSavings handles GET /api/estimate.
//
// @Summary      Estimate annual savings
// @Description  Computes the annual savings from lowering the antipsychotic (AP) rate of nursing home residents to target_ap_rate at cost_per_day dollars per resident-day. Negative amounts are a projected cost increase.
// @Tags         Savings
// @Produce      json
// @Param        target_ap_rate query number  true "Target AP rate as a fraction" minimum(0.01) maximum(0.25) example(0.03)
// @Param        cost_per_day   query integer true "Daily drug cost in USD" minimum(1) maximum(50) example(15)
// @Success      200 {object} dto.SuccessResponse{data=model.SavingsEstimate} "Savings estimate"
// @Failure      400 {object} dto.ErrorResponse "Missing, malformed or out-of-range input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/estimate [get]
func (h *Handler) EstimateSavings(c *gin.Context) {
	req, err := BindQuery[dto.EstimateRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuery, err)
		return
	}
	h.respondEstimate(c, req.ToInput())
}

// EstimateSavingsJSON handles POST /api/estimate.
//
// @Summary      Estimate annual savings (JSON body)
// @Description  Same computation as GET /api/estimate with the inputs sent as a JSON body.
// @Tags         Savings
// @Accept       json
// @Produce      json
// @Param        request body dto.EstimateRequest true "Calculator inputs"
// @Success      200 {object} dto.SuccessResponse{data=model.SavingsEstimate} "Savings estimate"
// @Failure      400 {object} dto.ErrorResponse "Missing, malformed or out-of-range input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/estimate [post]
func (h *Handler) EstimateSavingsJSON(c *gin.Context) {
	req, err := BindJSON[dto.EstimateRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	h.respondEstimate(c, req.ToInput())
}

func (h *Handler) respondEstimate(c *gin.Context, input model.SavingsInput) {
	setLogFields(c, input)

	estimate, err := h.estimator.Estimate(input)
	if err != nil {
		h.estimateError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(estimate)
}

// GetParameters handles GET /api/parameters.
//
// @Summary      Calculator parameters
// @Description  Returns the fixed constants, the slider domains, the default inputs, the cost presets and the data notes.
// @Tags         Savings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ParametersResponse} "Calculator parameters"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Security     ApiKeyAuth
// @Router       /api/parameters [get]
func (h *Handler) GetParameters(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(dto.NewParametersResponse(h.defaults, h.presets))
}

// CompareCostTiers handles GET /api/compare.
//
// @Summary      Compare cost tiers
// @Description  Estimates annual savings at target_ap_rate for every configured cost preset, in preset order.
// @Tags         Savings
// @Produce      json
// @Param        target_ap_rate query number true "Target AP rate as a fraction" minimum(0.01) maximum(0.25) example(0.03)
// @Success      200 {object} dto.SuccessResponse{data=dto.ComparisonResponse} "One estimate per cost preset"
// @Failure      400 {object} dto.ErrorResponse "Missing, malformed or out-of-range input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     ApiKeyAuth
// @Router       /api/compare [get]
func (h *Handler) CompareCostTiers(c *gin.Context) {
	req, err := BindQuery[dto.CompareRequest](c)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuery, err)
		return
	}
	c.Set(middleware.LogFieldTargetApRate, *req.TargetApRate)

	estimates, err := h.estimator.CompareCostTiers(*req.TargetApRate, h.presets)
	if err != nil {
		h.estimateError(c, err)
		return
	}

	NewResponseBuilder(c).SuccessOK(dto.NewComparisonResponse(*req.TargetApRate, h.presets, estimates))
}

// DownloadReport handles GET /api/report.pdf.
//
// @Summary      Download PDF report
// @Description  Renders the estimate for the given inputs together with the cost-tier comparison as a PDF document.
// @Tags         Savings
// @Produce      application/pdf
// @Param        target_ap_rate query number  true "Target AP rate as a fraction" minimum(0.01) maximum(0.25) example(0.03)
// @Param        cost_per_day   query integer true "Daily drug cost in USD" minimum(1) maximum(50) example(15)
// @Success      200 {file} binary "PDF report"
// @Failure      400 {object} dto.ErrorResponse "Missing, malformed or out-of-range input"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid API key"
// @Failure      404 {object} dto.ErrorResponse "Reports are disabled"
// @Failure      500 {object} dto.ErrorResponse "Report generation failed"
// @Security     ApiKeyAuth
// @Router       /api/report.pdf [get]
func (h *Handler) DownloadReport(c *gin.Context) {
	builder := NewResponseBuilder(c)
	if h.reports == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	req, err := BindQuery[dto.EstimateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuery, err)
		return
	}
	input := req.ToInput()
	setLogFields(c, input)

	estimate, err := h.estimator.Estimate(input)
	if err != nil {
		h.estimateError(c, err)
		return
	}

	tiers, err := h.estimator.CompareCostTiers(input.TargetApRate, h.presets)
	if err != nil {
		h.estimateError(c, err)
		return
	}

	pdf, err := h.reports.GenerateSavingsReport(estimate, tiers, h.now())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyReportFailed, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(pdf)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) estimateError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyOutOfRange, dto.DomainErrorDetails(err), err)
		return
	}
	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}

func setLogFields(c *gin.Context, input model.SavingsInput) {
	c.Set(middleware.LogFieldTargetApRate, input.TargetApRate)
	c.Set(middleware.LogFieldCostPerDay, input.CostPerDay)
}
