// Package dashboard assembles the analytics dashboard from the stats API.
package dashboard

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"capilia/internal/client"
	"capilia/internal/model"
)

// Section limits used by the dashboard widgets.
const (
	LocationLimit        = 10
	ChemistryLimit       = 20
	CompanyProductsLimit = 10
	GlobalProductsLimit  = 50
)

// StatsClient is the subset of the REST client the loader needs.
type StatsClient interface {
	LocationStats(ctx context.Context, level model.LocationLevel, limit int, f client.StatsFilters) (*model.LocationStats, error)
	ChemistryStats(ctx context.Context, limit int, f client.StatsFilters) ([]model.ChemistryStat, error)
	ProductStatsByCompany(ctx context.Context, limit int, f client.StatsFilters) ([]model.ProductStatByCompany, error)
	ProductStatsGlobal(ctx context.Context, limit int, f client.StatsFilters) ([]model.ProductStatGlobal, error)
}

// Summary holds the four stats cards.
type Summary struct {
	TotalCompanies int `json:"total_companies"`
	Locations      int `json:"locations"`
	Chemistries    int `json:"chemistries"`
	Products       int `json:"products"`
}

// Data is one full dashboard render. Lists are never nil.
type Data struct {
	Locations       []model.LocationStat         `json:"locations"`
	Chemistries     []model.ChemistryStat        `json:"chemistries"`
	CompanyProducts []model.ProductStatByCompany `json:"company_products"`
	GlobalProducts  []model.ProductStatGlobal    `json:"global_products"`
	Summary         Summary                      `json:"summary"`
}

// Loader fetches every dashboard section for a filter set.
type Loader struct {
	client StatsClient
	log    *logrus.Logger
}

// NewLoader returns a Loader reading through c and logging failures to log.
func NewLoader(c StatsClient, log *logrus.Logger) *Loader {
	return &Loader{client: c, log: log}
}

// Load fetches locations, chemistries and products concurrently. A failing
// section is logged and rendered empty; the products section fails as a whole
// when either of its two requests fails.
func (l *Loader) Load(ctx context.Context, f client.StatsFilters) *Data {
	d := &Data{
		Locations:       []model.LocationStat{},
		Chemistries:     []model.ChemistryStat{},
		CompanyProducts: []model.ProductStatByCompany{},
		GlobalProducts:  []model.ProductStatGlobal{},
	}

	var g errgroup.Group
	g.Go(func() error {
		res, err := l.client.LocationStats(ctx, model.LevelCountry, LocationLimit, f)
		if err != nil {
			l.sectionFailed("locations", err)
			return nil
		}
		if res.Rows != nil {
			d.Locations = res.Rows
		}
		return nil
	})
	g.Go(func() error {
		rows, err := l.client.ChemistryStats(ctx, ChemistryLimit, f)
		if err != nil {
			l.sectionFailed("chemistries", err)
			return nil
		}
		if rows != nil {
			d.Chemistries = rows
		}
		return nil
	})
	g.Go(func() error {
		company, global, err := l.loadProducts(ctx, f)
		if err != nil {
			l.sectionFailed("products", err)
			return nil
		}
		if company != nil {
			d.CompanyProducts = company
		}
		if global != nil {
			d.GlobalProducts = global
		}
		return nil
	})
	// Sections never return errors; Wait only joins them.
	_ = g.Wait()

	d.Summary = Summarize(d)
	return d
}

func (l *Loader) loadProducts(ctx context.Context, f client.StatsFilters) ([]model.ProductStatByCompany, []model.ProductStatGlobal, error) {
	var (
		company []model.ProductStatByCompany
		global  []model.ProductStatGlobal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		company, err = l.client.ProductStatsByCompany(gctx, CompanyProductsLimit, f)
		return err
	})
	g.Go(func() (err error) {
		global, err = l.client.ProductStatsGlobal(gctx, GlobalProductsLimit, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return company, global, nil
}

func (l *Loader) sectionFailed(section string, err error) {
	l.log.WithError(err).WithField("section", section).Error("dashboard_section_failed")
}

// Summarize computes the stats cards: companies summed over the location
// rows, the number of location rows, the number of chemistries and products
// summed over the global product types.
func Summarize(d *Data) Summary {
	s := Summary{Locations: len(d.Locations), Chemistries: len(d.Chemistries)}
	for _, l := range d.Locations {
		s.TotalCompanies += l.Count
	}
	for _, p := range d.GlobalProducts {
		s.Products += p.Count
	}
	return s
}
