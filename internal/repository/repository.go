// Package repository contains data access layer abstractions.
// Implementations live in subpackages (sqldb) and contain no business logic.
package repository

import (
	"context"

	"capilia/internal/model"
)

// MaxLimit bounds every aggregate query.
const MaxLimit = 10_000

// ClampLimit keeps limit inside [1, MaxLimit].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// StatsRepository runs the dashboard aggregates against the company tables.
type StatsRepository interface {
	// LocationStats groups companies by country, state or city, busiest first.
	LocationStats(ctx context.Context, level model.LocationLevel, limit int, f model.CompanyFilters) ([]model.LocationStat, error)

	// LocationPoints returns companies that have coordinates.
	LocationPoints(ctx context.Context, limit int, f model.CompanyFilters) ([]model.CompanyLocation, error)

	// ChemistryStats counts distinct companies per available process type.
	ChemistryStats(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ChemistryStat, error)

	// ProductStatsByCompany counts products per company.
	ProductStatsByCompany(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ProductStatByCompany, error)

	// ProductStatsGlobal counts products per non-empty product type.
	ProductStatsGlobal(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ProductStatGlobal, error)

	// CompaniesMissingCoordinates lists companies lacking lat or lon.
	CompaniesMissingCoordinates(ctx context.Context, limit int) (*PageResult[model.CompanyLocation], error)
}

// RFQRepository persists RFQ submissions.
type RFQRepository interface {
	// Create inserts a new RFQ row and returns the stored record.
	Create(ctx context.Context, rfq *model.RFQ) (*model.RFQ, error)

	// FindByID returns an RFQ by its ID; sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id string) (*model.RFQ, error)

	// List returns RFQs newest first using LIMIT/OFFSET pagination.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.RFQ], error)
}

// PageQuery defines pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic result wrapper carrying the total row count.
type PageResult[T any] struct {
	Items []T
	Total int
}
