package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"capilia/internal/model"
	"capilia/internal/repository"
	"capilia/internal/service"
	"capilia/internal/storage"
)

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Locations(ctx context.Context, level model.LocationLevel, limit int, f model.CompanyFilters) (*model.LocationStats, error) {
	args := m.Called(ctx, level, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocationStats), args.Error(1)
}

func (m *MockStatsService) Chemistries(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ChemistryStat, error) {
	args := m.Called(ctx, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChemistryStat), args.Error(1)
}

func (m *MockStatsService) Products(ctx context.Context, by model.ProductsBy, limit int, f model.CompanyFilters) (*service.ProductStats, error) {
	args := m.Called(ctx, by, limit, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductStats), args.Error(1)
}

func (m *MockStatsService) MissingCoordinates(ctx context.Context, limit int) (*repository.PageResult[model.CompanyLocation], error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.CompanyLocation]), args.Error(1)
}

type MockRFQService struct {
	mock.Mock
}

func (m *MockRFQService) Submit(ctx context.Context, req service.RFQRequest) (*model.RFQ, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RFQ), args.Error(1)
}

func (m *MockRFQService) Get(ctx context.Context, id string) (*model.RFQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RFQ), args.Error(1)
}

func (m *MockRFQService) List(ctx context.Context, limit, offset int) (*service.RFQListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RFQListResult), args.Error(1)
}

func (m *MockRFQService) Archive(ctx context.Context, id string) (io.ReadCloser, storage.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, storage.Document{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.Document), args.Error(2)
}
