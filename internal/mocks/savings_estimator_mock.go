// Code generated manually. DO NOT EDIT.

package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/ap-savings-service/internal/domain/model"
)

// MockSavingsEstimator mocks service.SavingsEstimator.
type MockSavingsEstimator struct {
	mock.Mock
}

// NewMockSavingsEstimator creates a mock that asserts its expectations on cleanup.
func NewMockSavingsEstimator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSavingsEstimator {
	m := &MockSavingsEstimator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSavingsEstimator) Estimate(input model.SavingsInput) (model.SavingsEstimate, error) {
	args := m.Called(input)
	return args.Get(0).(model.SavingsEstimate), args.Error(1)
}

func (m *MockSavingsEstimator) CompareCostTiers(targetApRate float64, presets []model.CostPreset) ([]model.SavingsEstimate, error) {
	args := m.Called(targetApRate, presets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SavingsEstimate), args.Error(1)
}

// MockReportGenerator mocks service.ReportGenerator.
type MockReportGenerator struct {
	mock.Mock
}

func (m *MockReportGenerator) GenerateSavingsReport(estimate model.SavingsEstimate, tiers []model.SavingsEstimate, generatedAt time.Time) ([]byte, error) {
	args := m.Called(estimate, tiers, generatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
