package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ap-savings-service/internal/domain/dto"
	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/i18n"
	"github.com/guttosm/ap-savings-service/internal/logger"
	"github.com/guttosm/ap-savings-service/internal/middleware"
	"github.com/guttosm/ap-savings-service/internal/service"
	"github.com/guttosm/ap-savings-service/internal/web"
)

const (
	estimatePath = "/estimate"
	reportPath   = "/api/report.pdf"
)

// PageConfig configures the calculator page.
type PageConfig struct {
	Title    string
	Theme    string
	Defaults model.SavingsInput
	Presets  []model.CostPreset
}

// PageHandler renders the calculator page.
type PageHandler struct {
	estimator service.SavingsEstimator
	cfg       PageConfig
}

// pageView is the data passed to the page template.
type pageView struct {
	Title        string
	Theme        string
	Estimate     model.SavingsEstimate
	TargetDomain model.InputDomain
	CostDomain   model.InputDomain
	Presets      []model.CostPreset
	Notes        []string
	ReportURL    string
	ReportPath   string
	EstimatePath string
}

// NewPageHandler creates a PageHandler, filling unset configuration with defaults.
func NewPageHandler(estimator service.SavingsEstimator, cfg PageConfig) *PageHandler {
	if cfg.Title == "" {
		cfg.Title = "Dosing Down, DOGE-ing Up"
	}
	if !web.ValidTheme(cfg.Theme) {
		cfg.Theme = web.ThemeCard
	}
	if cfg.Defaults == (model.SavingsInput{}) {
		cfg.Defaults = model.DefaultSavingsInput()
	}
	if cfg.Presets == nil {
		cfg.Presets = model.DefaultCostPresets()
	}
	return &PageHandler{estimator: estimator, cfg: cfg}
}

// Index handles GET /. Query values stand in for slider positions and are
// clamped into the input domain instead of being rejected.
func (p *PageHandler) Index(c *gin.Context) {
	input := p.pageInput(c)
	setLogFields(c, input)

	estimate, err := p.estimator.Estimate(input)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, i18n.T(i18n.ErrKeyInternalError))
		return
	}

	query := url.Values{}
	query.Set("target_ap_rate", strconv.FormatFloat(input.TargetApRate, 'f', -1, 64))
	query.Set("cost_per_day", strconv.Itoa(input.CostPerDay))

	c.HTML(http.StatusOK, web.IndexTemplate, pageView{
		Title:        p.cfg.Title,
		Theme:        p.cfg.Theme,
		Estimate:     estimate,
		TargetDomain: model.TargetApRateDomain,
		CostDomain:   model.CostPerDayDomain,
		Presets:      p.cfg.Presets,
		Notes:        model.AboutTheData,
		ReportURL:    reportPath + "?" + query.Encode(),
		ReportPath:   reportPath,
		EstimatePath: estimatePath,
	})
}

// Estimate handles GET /estimate, the endpoint the page polls while a slider moves.
// Like Index it clamps the query instead of rejecting it, so every slider position
// yields an estimate.
func (p *PageHandler) Estimate(c *gin.Context) {
	input := p.pageInput(c)
	setLogFields(c, input)

	estimate, err := p.estimator.Estimate(input)
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(estimate)
}

func (p *PageHandler) pageInput(c *gin.Context) model.SavingsInput {
	rate := p.cfg.Defaults.TargetApRate
	cost := float64(p.cfg.Defaults.CostPerDay)

	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		log := logger.Logger()
		log.Debug().Err(err).Str("request_id", middleware.GetRequestID(c)).Msg("Ignoring malformed page query")
		return model.Clamp(rate, cost)
	}
	if q.TargetApRate != nil {
		rate = *q.TargetApRate
	}
	if q.CostPerDay != nil {
		cost = *q.CostPerDay
	}
	return model.Clamp(rate, cost)
}
