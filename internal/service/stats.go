package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"capilia/internal/cache"
	"capilia/internal/model"
	"capilia/internal/repository"
)

var (
	ErrInvalidLevel = errors.New("level must be one of point, country, state, city")
	ErrInvalidBy    = errors.New("by must be one of company, global")
	ErrInvalidLimit = fmt.Errorf("limit must be between 1 and %d", repository.MaxLimit)
)

// Cache namespaces, also used as metric labels.
const (
	nsLocations   = "locations"
	nsChemistries = "chemistries"
	nsProducts    = "products"
)

// ProductStats is the result of a product aggregate; exactly one list is set.
type ProductStats struct {
	By        model.ProductsBy
	ByCompany []model.ProductStatByCompany
	Global    []model.ProductStatGlobal
}

// MarshalJSON emits the list matching By.
func (p ProductStats) MarshalJSON() ([]byte, error) {
	if p.By == model.ProductsByGlobal {
		if p.Global == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(p.Global)
	}
	if p.ByCompany == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p.ByCompany)
}

// StatsService validates aggregate requests and serves them through the cache.
type StatsService interface {
	// Locations groups companies by level; the point level returns a FeatureCollection.
	Locations(ctx context.Context, level model.LocationLevel, limit int, f model.CompanyFilters) (*model.LocationStats, error)

	// Chemistries counts companies per available process type.
	Chemistries(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ChemistryStat, error)

	// Products counts products per company or per product type.
	Products(ctx context.Context, by model.ProductsBy, limit int, f model.CompanyFilters) (*ProductStats, error)

	// MissingCoordinates reports companies that cannot be placed on the map. Not cached.
	MissingCoordinates(ctx context.Context, limit int) (*repository.PageResult[model.CompanyLocation], error)
}

type statsService struct {
	repo  repository.StatsRepository
	cache *cache.Cache
}

// NewStatsService constructs a StatsService. A nil cache disables caching.
func NewStatsService(repo repository.StatsRepository, c *cache.Cache) StatsService {
	return &statsService{repo: repo, cache: c}
}

func validLimit(limit int) error {
	if limit < 1 || limit > repository.MaxLimit {
		return ErrInvalidLimit
	}
	return nil
}

func cached[T any](ctx context.Context, c *cache.Cache, namespace, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}
	return cache.GetOrLoad(ctx, c, namespace, key, load)
}

func (s *statsService) Locations(ctx context.Context, level model.LocationLevel, limit int, f model.CompanyFilters) (*model.LocationStats, error) {
	if level == "" {
		level = model.LevelCountry
	}
	if !level.Valid() {
		return nil, ErrInvalidLevel
	}
	// Cached results outlive the request buffer level may point into.
	level = model.LocationLevel(strings.Clone(string(level)))
	if err := validLimit(limit); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s|%d|%s", level, limit, f.CacheKey())
	return cached(ctx, s.cache, nsLocations, key, func(ctx context.Context) (*model.LocationStats, error) {
		if level == model.LevelPoint {
			rows, err := s.repo.LocationPoints(ctx, limit, f)
			if err != nil {
				return nil, fmt.Errorf("location points: %w", err)
			}
			fc := model.NewFeatureCollection()
			for _, r := range rows {
				fc.Features = append(fc.Features, model.PointFeature(r))
			}
			return &model.LocationStats{Level: level, Points: fc}, nil
		}

		rows, err := s.repo.LocationStats(ctx, level, limit, f)
		if err != nil {
			return nil, fmt.Errorf("location stats: %w", err)
		}
		return &model.LocationStats{Level: level, Rows: rows}, nil
	})
}

func (s *statsService) Chemistries(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ChemistryStat, error) {
	if err := validLimit(limit); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%d|%s", limit, f.CacheKey())
	return cached(ctx, s.cache, nsChemistries, key, func(ctx context.Context) ([]model.ChemistryStat, error) {
		rows, err := s.repo.ChemistryStats(ctx, limit, f)
		if err != nil {
			return nil, fmt.Errorf("chemistry stats: %w", err)
		}
		return rows, nil
	})
}

func (s *statsService) Products(ctx context.Context, by model.ProductsBy, limit int, f model.CompanyFilters) (*ProductStats, error) {
	if by == "" {
		by = model.ProductsByCompany
	}
	if !by.Valid() {
		return nil, ErrInvalidBy
	}
	by = model.ProductsBy(strings.Clone(string(by)))
	if err := validLimit(limit); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s|%d|%s", by, limit, f.CacheKey())
	return cached(ctx, s.cache, nsProducts, key, func(ctx context.Context) (*ProductStats, error) {
		out := &ProductStats{By: by}
		var err error
		if by == model.ProductsByGlobal {
			out.Global, err = s.repo.ProductStatsGlobal(ctx, limit, f)
		} else {
			out.ByCompany, err = s.repo.ProductStatsByCompany(ctx, limit, f)
		}
		if err != nil {
			return nil, fmt.Errorf("product stats: %w", err)
		}
		return out, nil
	})
}

func (s *statsService) MissingCoordinates(ctx context.Context, limit int) (*repository.PageResult[model.CompanyLocation], error) {
	if err := validLimit(limit); err != nil {
		return nil, err
	}
	return s.repo.CompaniesMissingCoordinates(ctx, limit)
}
