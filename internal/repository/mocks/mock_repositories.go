package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"capilia/internal/model"
	"capilia/internal/repository"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) LocationStats(ctx context.Context, level model.LocationLevel, limit int, f model.CompanyFilters) ([]model.LocationStat, error) {
	args := m.Called(ctx, level, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LocationStat), args.Error(1)
}

func (m *MockStatsRepository) LocationPoints(ctx context.Context, limit int, f model.CompanyFilters) ([]model.CompanyLocation, error) {
	args := m.Called(ctx, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CompanyLocation), args.Error(1)
}

func (m *MockStatsRepository) ChemistryStats(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ChemistryStat, error) {
	args := m.Called(ctx, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChemistryStat), args.Error(1)
}

func (m *MockStatsRepository) ProductStatsByCompany(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ProductStatByCompany, error) {
	args := m.Called(ctx, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductStatByCompany), args.Error(1)
}

func (m *MockStatsRepository) ProductStatsGlobal(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ProductStatGlobal, error) {
	args := m.Called(ctx, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProductStatGlobal), args.Error(1)
}

func (m *MockStatsRepository) CompaniesMissingCoordinates(ctx context.Context, limit int) (*repository.PageResult[model.CompanyLocation], error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.CompanyLocation]), args.Error(1)
}

type MockRFQRepository struct {
	mock.Mock
}

func (m *MockRFQRepository) Create(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error) {
	args := m.Called(ctx, rfq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RFQ), args.Error(1)
}

func (m *MockRFQRepository) FindByID(ctx context.Context, id string) (*model.RFQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RFQ), args.Error(1)
}

func (m *MockRFQRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.RFQ], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.RFQ]), args.Error(1)
}
