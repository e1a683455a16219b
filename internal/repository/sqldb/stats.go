// Package sqldb implements the repository interfaces on database/sql. Queries are
// written once with '?' placeholders and rebound for the connection's dialect.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"capilia/internal/database"
	"capilia/internal/model"
	"capilia/internal/repository"
)

// StatsSQL is the database/sql implementation of repository.StatsRepository.
type StatsSQL struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewStatsSQL creates a new StatsSQL repository.
func NewStatsSQL(db *sql.DB, dialect database.Dialect) *StatsSQL {
	return &StatsSQL{db: db, dialect: dialect}
}

var _ repository.StatsRepository = (*StatsSQL)(nil)

var levelColumns = map[model.LocationLevel]string{
	model.LevelCountry: "country",
	model.LevelState:   "state",
	model.LevelCity:    "city",
}

// companyFilterClause restricts idCol to companies matching f. It returns an
// empty clause when no filter is set.
func companyFilterClause(idCol string, f model.CompanyFilters) (string, []any) {
	if !f.HasAny() {
		return "", nil
	}

	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(" AND ")
	b.WriteString(idCol)
	b.WriteString(" IN (SELECT fc.id FROM companies fc WHERE 1 = 1")

	// Case-insensitive exact match for user-supplied names.
	for _, t := range []struct{ col, val string }{
		{"country", f.Country},
		{"state", f.State},
		{"city", f.City},
	} {
		if t.val == "" {
			continue
		}
		fmt.Fprintf(&b, " AND LOWER(fc.%s) = ?", t.col)
		args = append(args, strings.ToLower(t.val))
	}

	if n := len(f.Chemistries); n > 0 {
		fmt.Fprintf(&b, ` AND fc.id IN (
			SELECT cp.company_id FROM company_processes cp
			JOIN process_types pt ON pt.id = cp.process_type_id
			WHERE cp.available = TRUE AND pt.code IN (%s)
			GROUP BY cp.company_id
			HAVING COUNT(DISTINCT pt.code) = ?)`, database.Placeholders(n))
		for _, c := range f.Chemistries {
			args = append(args, c)
		}
		args = append(args, n)
	}

	if n := len(f.Certifications); n > 0 {
		fmt.Fprintf(&b, ` AND fc.id IN (
			SELECT cc.company_id FROM company_certifications cc
			JOIN certification_types ct ON ct.id = cc.certification_type_id
			WHERE cc.has_cert = TRUE AND ct.code IN (%s)
			GROUP BY cc.company_id
			HAVING COUNT(DISTINCT ct.code) = ?)`, database.Placeholders(n))
		for _, c := range f.Certifications {
			args = append(args, c)
		}
		args = append(args, n)
	}

	b.WriteString(")")
	return b.String(), args
}

// LocationStats groups companies by the level's column.
func (r *StatsSQL) LocationStats(ctx context.Context, level model.LocationLevel, limit int, f model.CompanyFilters) ([]model.LocationStat, error) {
	col, ok := levelColumns[level]
	if !ok {
		return nil, fmt.Errorf("unsupported location level %q", level)
	}
	clause, args := companyFilterClause("id", f)
	q := fmt.Sprintf(`
		SELECT %[1]s AS loc_key, COUNT(id) AS company_count
		FROM companies
		WHERE %[1]s IS NOT NULL AND %[1]s <> ''%[2]s
		GROUP BY %[1]s
		ORDER BY company_count DESC, loc_key ASC
		LIMIT ?`, col, clause)
	args = append(args, repository.ClampLimit(limit))

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LocationStat, 0)
	for rows.Next() {
		var s model.LocationStat
		if err := rows.Scan(&s.Key, &s.Count); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// LocationPoints returns companies with both coordinates, ordered by id.
func (r *StatsSQL) LocationPoints(ctx context.Context, limit int, f model.CompanyFilters) ([]model.CompanyLocation, error) {
	clause, args := companyFilterClause("id", f)
	q := fmt.Sprintf(`
		SELECT id, name, location, city, state, country, lat, lon
		FROM companies
		WHERE lat IS NOT NULL AND lon IS NOT NULL%s
		ORDER BY id
		LIMIT ?`, clause)
	args = append(args, repository.ClampLimit(limit))

	return r.queryLocations(ctx, q, args...)
}

// CompaniesMissingCoordinates lists companies lacking lat or lon with a total count.
func (r *StatsSQL) CompaniesMissingCoordinates(ctx context.Context, limit int) (*repository.PageResult[model.CompanyLocation], error) {
	const qCount = `SELECT COUNT(*) FROM companies WHERE lat IS NULL OR lon IS NULL`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const q = `
		SELECT id, name, location, city, state, country, lat, lon
		FROM companies
		WHERE lat IS NULL OR lon IS NULL
		ORDER BY id
		LIMIT ?`
	items, err := r.queryLocations(ctx, q, repository.ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.CompanyLocation]{Items: items, Total: total}, nil
}

func (r *StatsSQL) queryLocations(ctx context.Context, q string, args ...any) ([]model.CompanyLocation, error) {
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CompanyLocation, 0)
	for rows.Next() {
		var (
			c                              model.CompanyLocation
			location, city, state, country sql.NullString
			lat, lon                       sql.NullFloat64
		)
		if err := rows.Scan(&c.ID, &c.Name, &location, &city, &state, &country, &lat, &lon); err != nil {
			return nil, err
		}
		c.Location, c.City, c.State, c.Country = location.String, city.String, state.String, country.String
		if lat.Valid {
			c.Lat = &lat.Float64
		}
		if lon.Valid {
			c.Lon = &lon.Float64
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ChemistryStats counts distinct companies per process code among available processes.
func (r *StatsSQL) ChemistryStats(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ChemistryStat, error) {
	clause, args := companyFilterClause("cp.company_id", f)
	q := fmt.Sprintf(`
		SELECT pt.code AS chemistry, COUNT(DISTINCT cp.company_id) AS company_count
		FROM process_types pt
		JOIN company_processes cp ON cp.process_type_id = pt.id
		WHERE cp.available = TRUE%s
		GROUP BY pt.code
		ORDER BY company_count DESC, chemistry ASC
		LIMIT ?`, clause)
	args = append(args, repository.ClampLimit(limit))

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ChemistryStat, 0)
	for rows.Next() {
		var s model.ChemistryStat
		if err := rows.Scan(&s.Chemistry, &s.CompanyCount); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ProductStatsByCompany counts products per company, largest catalogues first.
func (r *StatsSQL) ProductStatsByCompany(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ProductStatByCompany, error) {
	clause, args := companyFilterClause("c.id", f)
	q := fmt.Sprintf(`
		SELECT c.id, c.name, COUNT(p.id) AS product_count
		FROM companies c
		JOIN company_products p ON p.company_id = c.id
		WHERE 1 = 1%s
		GROUP BY c.id, c.name
		ORDER BY product_count DESC, c.id ASC
		LIMIT ?`, clause)
	args = append(args, repository.ClampLimit(limit))

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductStatByCompany, 0)
	for rows.Next() {
		var s model.ProductStatByCompany
		if err := rows.Scan(&s.CompanyID, &s.CompanyName, &s.ProductCount); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ProductStatsGlobal counts products per product type.
func (r *StatsSQL) ProductStatsGlobal(ctx context.Context, limit int, f model.CompanyFilters) ([]model.ProductStatGlobal, error) {
	clause, args := companyFilterClause("company_id", f)
	q := fmt.Sprintf(`
		SELECT product_type, COUNT(id) AS product_count
		FROM company_products
		WHERE product_type IS NOT NULL AND product_type <> ''%s
		GROUP BY product_type
		ORDER BY product_count DESC, product_type ASC
		LIMIT ?`, clause)
	args = append(args, repository.ClampLimit(limit))

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductStatGlobal, 0)
	for rows.Next() {
		var s model.ProductStatGlobal
		if err := rows.Scan(&s.ProductType, &s.Count); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
