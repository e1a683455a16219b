package model

import "encoding/json"

// LocationLevel selects the company column a location aggregate groups by.
type LocationLevel string

const (
	LevelPoint   LocationLevel = "point"
	LevelCountry LocationLevel = "country"
	LevelState   LocationLevel = "state"
	LevelCity    LocationLevel = "city"
)

// Valid reports whether l is a known level.
func (l LocationLevel) Valid() bool {
	switch l {
	case LevelPoint, LevelCountry, LevelState, LevelCity:
		return true
	}
	return false
}

// ProductsBy selects the product aggregate shape.
type ProductsBy string

const (
	ProductsByCompany ProductsBy = "company"
	ProductsByGlobal  ProductsBy = "global"
)

// Valid reports whether b is a known grouping.
func (b ProductsBy) Valid() bool {
	return b == ProductsByCompany || b == ProductsByGlobal
}

// LocationStat is one grouped location row. Geometry is always null for grouped levels.
type LocationStat struct {
	Key      string `json:"key"`
	Count    int    `json:"count"`
	Geometry any    `json:"geometry"`
}

// ChemistryStat counts distinct companies offering a process type.
type ChemistryStat struct {
	Chemistry    string `json:"chemistry"`
	CompanyCount int    `json:"company_count"`
}

// ProductStatByCompany counts products per company.
type ProductStatByCompany struct {
	CompanyID    int64  `json:"company_id"`
	CompanyName  string `json:"company_name"`
	ProductCount int    `json:"product_count"`
}

// ProductStatGlobal counts products per product type.
type ProductStatGlobal struct {
	ProductType string `json:"product_type"`
	Count       int    `json:"count"`
}

// CompanyLocation is a company row reduced to its address and coordinates.
type CompanyLocation struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location,omitempty"`
	City     string   `json:"city,omitempty"`
	State    string   `json:"state,omitempty"`
	Country  string   `json:"country,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
}

// LocationStats is the result of a location aggregate. Grouped levels fill Rows,
// the point level fills Points. It marshals to whichever one is in use.
type LocationStats struct {
	Level  LocationLevel
	Rows   []LocationStat
	Points *FeatureCollection
}

// MarshalJSON emits a bare list for grouped levels and a FeatureCollection for points.
func (s LocationStats) MarshalJSON() ([]byte, error) {
	if s.Level == LevelPoint {
		if s.Points == nil {
			return json.Marshal(NewFeatureCollection())
		}
		return json.Marshal(s.Points)
	}
	if s.Rows == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Rows)
}
