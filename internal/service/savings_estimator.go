// Package service contains the business logic of the savings service.
package service

import (
	"errors"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
	"github.com/guttosm/ap-savings-service/internal/metrics"
	"github.com/guttosm/ap-savings-service/internal/service/cache"
)

// ErrNoPresets is returned by CompareCostTiers when no cost tiers are configured.
var ErrNoPresets = errors.New("no cost presets configured")

// SavingsEstimator defines the savings calculation operations.
type SavingsEstimator interface {
	Estimate(input model.SavingsInput) (model.SavingsEstimate, error)
	CompareCostTiers(targetApRate float64, presets []model.CostPreset) ([]model.SavingsEstimate, error)
}

// Option configures a SavingsEstimatorService.
type Option func(*SavingsEstimatorService)

// SavingsEstimatorService implements SavingsEstimator.
type SavingsEstimatorService struct {
	cache cache.Cache
}

// NewSavingsEstimatorService creates a SavingsEstimatorService with the given options.
func NewSavingsEstimatorService(opts ...Option) *SavingsEstimatorService {
	s := &SavingsEstimatorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables an in-process sharded LRU cache with the given capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *SavingsEstimatorService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface injects a custom cache implementation, e.g. the Redis cache.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *SavingsEstimatorService) {
		s.cache = c
	}
}

// AnnualSavings computes the yearly drug cost avoided by moving the resident
// population from CurrentApRate to targetApRate. Intermediate terms are not rounded.
// The result is negative when targetApRate exceeds CurrentApRate.
func AnnualSavings(targetApRate float64, costPerDay int) float64 {
	current, target := apResidents(targetApRate)
	return (current - target) * float64(costPerDay) * model.DaysPerYear
}

// apResidents returns the residents on antipsychotics today and at targetApRate.
// Both products are evaluated the same way at run time, and the explicit conversions
// prevent fused multiply-add, so a target equal to CurrentApRate yields exactly zero.
func apResidents(targetApRate float64) (current, target float64) {
	residents := float64(model.TotalResidents)
	current = float64(residents * model.CurrentApRate)
	target = float64(residents * targetApRate)
	return current, target
}

// Estimate validates input and returns the savings estimate with its display strings.
// Out-of-domain input yields a *model.DomainError.
func (s *SavingsEstimatorService) Estimate(input model.SavingsInput) (model.SavingsEstimate, error) {
	start := time.Now()

	if err := input.Validate(); err != nil {
		metrics.RecordSavingsEstimate(time.Since(start), "invalid")
		return model.SavingsEstimate{}, err
	}

	key, cacheable := cacheKey(input)
	if cacheable && s.cache != nil {
		if estimate, ok := s.cache.Get(key); ok {
			metrics.RecordSavingsEstimate(time.Since(start), "cached")
			return estimate, nil
		}
	}

	estimate := buildEstimate(input)

	if cacheable && s.cache != nil {
		s.cache.Set(key, estimate)
		if withMetrics, ok := s.cache.(cache.CacheWithMetrics); ok {
			m := withMetrics.Metrics()
			metrics.UpdateCacheMetrics(m.Size, m.Capacity)
		}
	}

	metrics.RecordSavingsEstimate(time.Since(start), "success")
	return estimate, nil
}

// CompareCostTiers returns one estimate per preset, in preset order, for the same target rate.
func (s *SavingsEstimatorService) CompareCostTiers(targetApRate float64, presets []model.CostPreset) ([]model.SavingsEstimate, error) {
	if len(presets) == 0 {
		return nil, ErrNoPresets
	}

	estimates := make([]model.SavingsEstimate, 0, len(presets))
	for _, in := range lo.Map(presets, func(p model.CostPreset, _ int) model.SavingsInput {
		return model.SavingsInput{TargetApRate: targetApRate, CostPerDay: p.CostPerDay}
	}) {
		estimate, err := s.Estimate(in)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, estimate)
	}
	return estimates, nil
}

// Close stops background cache maintenance.
func (s *SavingsEstimatorService) Close() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func buildEstimate(input model.SavingsInput) model.SavingsEstimate {
	annual := AnnualSavings(input.TargetApRate, input.CostPerDay)
	current, target := apResidents(input.TargetApRate)

	return model.SavingsEstimate{
		TargetApRate:       input.TargetApRate,
		CostPerDay:         input.CostPerDay,
		CurrentApRate:      model.CurrentApRate,
		CurrentApResidents: current,
		TargetApResidents:  target,
		ReducedResidents:   current - target,
		AnnualSavingsUSD:   annual,
		SavingsBillions:    annual / 1e9,
		IsCostIncrease:     annual < 0,
		Label:              model.HeadlineLabel(annual),
		Headline:           model.FormatBillions(annual),
		Summary:            model.SummarySentence(input.TargetApRate, input.CostPerDay),
	}
}

// cacheKey packs an input into a single int. Only rates that sit exactly on a
// slider step are cacheable so that a hit always returns the bit-identical result.
func cacheKey(input model.SavingsInput) (int, bool) {
	permille := math.Round(input.TargetApRate * 1000)
	if permille/1000 != input.TargetApRate {
		return 0, false
	}
	return int(permille)*100 + input.CostPerDay, true
}
