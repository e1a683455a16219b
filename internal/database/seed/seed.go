// Package seed loads a small deterministic dataset into every table of the
// schema. It is intended for local development, demos and tests.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"capilia/internal/database"
)

type lookup struct {
	Code    string
	Name    string
	Comment string
}

var (
	certificationTypes = []lookup{
		{Code: "USFDA", Name: "US FDA"},
		{Code: "EDQM", Name: "EDQM"},
		{Code: "WHO_GMP", Name: "WHO GMP"},
		{Code: "ISO9001", Name: "ISO 9001"},
		{Code: "GLP", Name: "GLP"},
	}
	processTypes = []lookup{
		{Code: "HYDROGENATION", Name: "Hydrogenation"},
		{Code: "NITRATION", Name: "Nitration"},
		{Code: "ACYLATION", Name: "Acylation"},
		{Code: "OXIDATION", Name: "Oxidation"},
		{Code: "REDUCTION", Name: "Reduction"},
	}
	equipmentTypes = []lookup{
		{Code: "SPRAY_DRYER", Name: "Spray dryer", Comment: "Drying equipment"},
		{Code: "FBD", Name: "Fluid Bed Dryer (FBD)", Comment: "Drying equipment"},
		{Code: "MICRONIZER", Name: "Micronizer", Comment: "Particle size reduction"},
		{Code: "DISTILLATION_COLUMN", Name: "Distillation columns", Comment: "Solvent recovery / distillation"},
		{Code: "KILO_LAB", Name: "Kilo lab", Comment: "Scale-up lab"},
	}
	analyticsTypes = []lookup{
		{Code: "HPLC", Name: "HPLC"},
		{Code: "GC", Name: "GC"},
		{Code: "NMR", Name: "NMR"},
		{Code: "LCMS", Name: "LCMS"},
		{Code: "STABILITY_CHAMBER", Name: "Stability chamber"},
	}
	serviceTypes = []lookup{
		{Code: "METHOD_DEVELOPMENT", Name: "Method Development"},
		{Code: "IMPURITY_SYNTHESIS", Name: "Impurity Synthesis"},
		{Code: "CHARACTERIZATION", Name: "Characterization Studies"},
		{Code: "STABILITY_STUDIES", Name: "Stability Studies"},
		{Code: "PATENT_CHECK", Name: "Patent Check"},
	}
)

type company struct {
	Name              string
	Location          string
	City              string
	State             *string
	Country           string
	Lat, Lon          *float64
	CompanyType       string
	Turnover          float64
	Facilities        int
	Manpower          int
	PhDCount          *int
	MScCount          *int
	ChemicalEngineers int
	Products          int
	UnderDevProducts  int
	CustomerAudit     bool

	// Mapping rows seeded with available/has_cert false.
	UnavailableProcess string
	LapsedCert         string
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// companies is the seeded company set. BluePeak has no coordinates on purpose so the
// point aggregation has a row to skip; EuroSynth sits outside India. Nova carries a
// lapsed certification and an unavailable process that no filter or count may see.
var companies = []company{
	{
		Name: "Acme Pharma CDMO", Location: "Bangalore, Karnataka, India",
		City: "Bangalore", State: strPtr("Karnataka"), Country: "India",
		Lat: floatPtr(12.9716), Lon: floatPtr(77.5946),
		CompanyType: "CDMO", Turnover: 12500000, Facilities: 2, Manpower: 420,
		PhDCount: intPtr(18), MScCount: intPtr(90), ChemicalEngineers: 35,
		Products: 22, UnderDevProducts: 8, CustomerAudit: true,
	},
	{
		Name: "Nova Intermediates", Location: "Hyderabad, Telangana, India",
		City: "Hyderabad", State: strPtr("Telangana"), Country: "India",
		Lat: floatPtr(17.3850), Lon: floatPtr(78.4867),
		CompanyType: "API manufacturer", Turnover: 7200000, Facilities: 1, Manpower: 260,
		PhDCount: intPtr(6), MScCount: intPtr(45), ChemicalEngineers: 22,
		Products: 14, UnderDevProducts: 5,
		UnavailableProcess: "HYDROGENATION", LapsedCert: "ISO9001",
	},
	{
		Name: "BluePeak Chemicals", Location: "Ahmedabad, Gujarat, India",
		City: "Ahmedabad", State: strPtr("Gujarat"), Country: "India",
		CompanyType: "Contract Manufacturer", Turnover: 3100000, Facilities: 1, Manpower: 140,
		ChemicalEngineers: 12, Products: 9, UnderDevProducts: 2,
	},
	{
		Name: "EuroSynth Labs", Location: "Basel, Switzerland",
		City: "Basel", Country: "Switzerland",
		Lat: floatPtr(47.5596), Lon: floatPtr(7.5886),
		CompanyType: "CRO", Turnover: 5400000, Facilities: 1, Manpower: 180,
		PhDCount: intPtr(24), MScCount: intPtr(60), ChemicalEngineers: 10,
		Products: 3, UnderDevProducts: 12, CustomerAudit: true,
	},
}

type product struct {
	Name  string
	Type  string
	Stage string
}

var productTemplates = []product{
	{Name: "API-A", Type: "API", Stage: "commercial"},
	{Name: "INT-B", Type: "Intermediate", Stage: "development"},
	{Name: "API-C", Type: "API", Stage: "commercial"},
}

// execer is satisfied by *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Needed reports whether the companies table is still empty.
func Needed(ctx context.Context, db *sql.DB) (bool, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies").Scan(&n); err != nil {
		return false, fmt.Errorf("count companies: %w", err)
	}
	return n == 0, nil
}

// Run seeds all tables inside one transaction.
func Run(ctx context.Context, db *sql.DB, d database.Dialect) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	if err := seed(ctx, tx, d, time.Now().UTC()); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

func seed(ctx context.Context, tx execer, d database.Dialect, now time.Time) error {
	certIDs, err := insertLookups(ctx, tx, d, "certification_types", certificationTypes)
	if err != nil {
		return err
	}
	procIDs, err := insertLookups(ctx, tx, d, "process_types", processTypes)
	if err != nil {
		return err
	}
	equipIDs, err := insertLookups(ctx, tx, d, "equipment_types", equipmentTypes)
	if err != nil {
		return err
	}
	analyIDs, err := insertLookups(ctx, tx, d, "analytics_types", analyticsTypes)
	if err != nil {
		return err
	}
	servIDs, err := insertLookups(ctx, tx, d, "service_types", serviceTypes)
	if err != nil {
		return err
	}

	today := now.Truncate(24 * time.Hour)
	for i, c := range companies {
		id, err := insertCompany(ctx, tx, d, c)
		if err != nil {
			return err
		}
		even := i%2 == 0

		certs := []string{"WHO_GMP", "GLP"}
		if even {
			certs = []string{"ISO9001", "USFDA"}
		}
		if c.LapsedCert != "" {
			certs = append(certs, c.LapsedCert)
		}
		for _, code := range certs {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO company_certifications
				  (company_id, certification_type_id, has_cert, cert_number, cert_issued_by, cert_valid_from, cert_valid_to, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
				id, certIDs[code], code != c.LapsedCert, fmt.Sprintf("%s-%03d", code, id), "Dummy Authority",
				today.AddDate(0, 0, -365), today.AddDate(0, 0, 365), "Dummy seeded certification",
			); err != nil {
				return fmt.Errorf("seed certification %s: %w", code, err)
			}
		}

		procs := []string{"NITRATION", "ACYLATION"}
		level, scale := "pilot", 500.0
		if even {
			procs = []string{"HYDROGENATION", "OXIDATION", "REDUCTION"}
			level, scale = "commercial", 5000.0
		}
		if c.UnavailableProcess != "" {
			procs = append(procs, c.UnavailableProcess)
		}
		for _, code := range procs {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO company_processes
				  (company_id, process_type_id, available, capability_level, max_scale_kg, notes)
				VALUES (?, ?, ?, ?, ?, ?)`),
				id, procIDs[code], code != c.UnavailableProcess, level, scale, "Dummy seeded process capability",
			); err != nil {
				return fmt.Errorf("seed process %s: %w", code, err)
			}
		}

		for _, code := range []string{"KILO_LAB", "DISTILLATION_COLUMN", "FBD"} {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO company_equipment (company_id, equipment_type_id, count, capacity, notes)
				VALUES (?, ?, ?, ?, ?)`),
				id, equipIDs[code], 1+i%3, 250.0+float64(i)*50.0, "Dummy seeded equipment",
			); err != nil {
				return fmt.Errorf("seed equipment %s: %w", code, err)
			}
		}

		for _, code := range []string{"HPLC", "GC", "LCMS"} {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO company_analytics (company_id, analytics_type_id, available, instrument_count, model_info, notes)
				VALUES (?, ?, TRUE, ?, ?, ?)`),
				id, analyIDs[code], 1+i%2, "Dummy Model", "Dummy seeded analytics capability",
			); err != nil {
				return fmt.Errorf("seed analytics %s: %w", code, err)
			}
		}

		for _, code := range []string{"METHOD_DEVELOPMENT", "IMPURITY_SYNTHESIS", "STABILITY_STUDIES"} {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO company_services (company_id, service_type_id, offered, details)
				VALUES (?, ?, TRUE, ?)`),
				id, servIDs[code], "Dummy seeded service offering",
			); err != nil {
				return fmt.Errorf("seed service %s: %w", code, err)
			}
		}

		for _, p := range productTemplates[:2+i%2] {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO company_products (company_id, product_name, product_type, stage, price_per_unit, units, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?)`),
				id, fmt.Sprintf("%s-%d", p.Name, id), p.Type, p.Stage, 125.0+float64(i)*10.0, "kg", "Dummy seeded product",
			); err != nil {
				return fmt.Errorf("seed product %s: %w", p.Name, err)
			}
		}
	}
	return nil
}

func insertLookups(ctx context.Context, tx execer, d database.Dialect, table string, rows []lookup) (map[string]int64, error) {
	ids := make(map[string]int64, len(rows))
	for _, r := range rows {
		var (
			q    string
			args []any
		)
		if table == "equipment_types" {
			q = `INSERT INTO equipment_types (code, name, comment) VALUES (?, ?, ?) RETURNING id`
			args = []any{r.Code, r.Name, r.Comment}
		} else {
			q = fmt.Sprintf(`INSERT INTO %s (code, name) VALUES (?, ?) RETURNING id`, table)
			args = []any{r.Code, r.Name}
		}
		var id int64
		if err := tx.QueryRowContext(ctx, d.Rebind(q), args...).Scan(&id); err != nil {
			return nil, fmt.Errorf("seed %s %s: %w", table, r.Code, err)
		}
		ids[r.Code] = id
	}
	return ids, nil
}

func insertCompany(ctx context.Context, tx execer, d database.Dialect, c company) (int64, error) {
	const q = `
		INSERT INTO companies
		  (name, location, city, state, country, lat, lon, company_type, turnover, no_of_facilities,
		   manpower, phd_count, msc_count, chemical_engineers, no_of_products, under_dev_products, customer_audit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := tx.QueryRowContext(ctx, d.Rebind(q),
		c.Name, c.Location, c.City, c.State, c.Country, c.Lat, c.Lon, c.CompanyType, c.Turnover, c.Facilities,
		c.Manpower, c.PhDCount, c.MScCount, c.ChemicalEngineers, c.Products, c.UnderDevProducts, c.CustomerAudit,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("seed company %s: %w", c.Name, err)
	}
	return id, nil
}
