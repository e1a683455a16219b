package catalog

import (
	"golang.org/x/text/cases"

	"capilia/internal/model"
)

// stateFacilities maps state names as they appear in common India GeoJSON
// sources to facility counts. Alternate spellings share a count.
var stateFacilities = map[string]int{
	"Maharashtra":       16,
	"Gujarat":           12,
	"Karnataka":         10,
	"Telangana":         9,
	"Tamil Nadu":        8,
	"Uttar Pradesh":     8,
	"Andhra Pradesh":    7,
	"Madhya Pradesh":    5,
	"Delhi":             4,
	"NCT of Delhi":      4,
	"Rajasthan":         3,
	"Kerala":            4,
	"Haryana":           4,
	"West Bengal":       3,
	"Odisha":            3,
	"Orissa":            3,
	"Punjab":            2,
	"Jharkhand":         2,
	"Chhattisgarh":      2,
	"Uttarakhand":       2,
	"Uttaranchal":       2,
	"Bihar":             2,
	"Himachal Pradesh":  2,
	"Assam":             1,
	"Jammu and Kashmir": 1,
	"Jammu & Kashmir":   1,
	"Goa":               1,

	"Sikkim":                                   0,
	"Arunachal Pradesh":                        0,
	"Meghalaya":                                0,
	"Manipur":                                  0,
	"Mizoram":                                  0,
	"Nagaland":                                 0,
	"Tripura":                                  0,
	"Ladakh":                                   0,
	"Puducherry":                               0,
	"Pondicherry":                              0,
	"Chandigarh":                               0,
	"Andaman and Nicobar Islands":              0,
	"Andaman & Nicobar":                        0,
	"Andaman & Nicobar Island":                 0,
	"Dadra and Nagar Haveli and Daman and Diu": 0,
	"Dadra & Nagar Haveli":                     0,
	"Daman & Diu":                              0,
	"Lakshadweep":                              0,
}

// Fill colours from the densest tier to the empty one.
const (
	FillHighest = "#0d6e5f"
	FillHigh    = "#2a9d8f"
	FillMedium  = "#52b788"
	FillLow     = "#95d5b2"
	FillEmpty   = "#b7e4c7"
)

// StateFacilities returns the facility count for a state name. An exact match
// wins over a case-insensitive one; unknown names count as 0.
func StateFacilities(name string) int {
	if n, ok := stateFacilities[name]; ok {
		return n
	}
	fold := cases.Fold()
	want := fold.String(name)
	for k, n := range stateFacilities {
		if fold.String(k) == want {
			return n
		}
	}
	return 0
}

// FacilityColor returns the choropleth fill for a facility count.
func FacilityColor(facilities int) string {
	switch {
	case facilities >= 10:
		return FillHighest
	case facilities >= 5:
		return FillHigh
	case facilities >= 3:
		return FillMedium
	case facilities >= 1:
		return FillLow
	default:
		return FillEmpty
	}
}

// Intensity is a relative shading bucket, 3 being the densest.
type Intensity int

const (
	IntensityFaint Intensity = iota
	IntensityLight
	IntensityMedium
	IntensityFull
)

// IntensityTier buckets facilities relative to the busiest state.
func IntensityTier(facilities, maxFacilities int) Intensity {
	if maxFacilities <= 0 {
		return IntensityFaint
	}
	ratio := float64(facilities) / float64(maxFacilities)
	switch {
	case ratio > 0.7:
		return IntensityFull
	case ratio > 0.4:
		return IntensityMedium
	case ratio > 0.2:
		return IntensityLight
	default:
		return IntensityFaint
	}
}

// nameProperties are checked in order when reading a feature's state name.
var nameProperties = []string{"ST_NM", "NAME_1", "name", "NAME", "state"}

// StateName reads a feature's state name from the first non-empty known property.
func StateName(props map[string]any) string {
	for _, key := range nameProperties {
		if s, ok := props[key].(string); ok && s != "" {
			return s
		}
	}
	return "Unknown"
}

// AnnotateStates sets "facilities" and "fill" on every feature from its state name.
func AnnotateStates(fc *model.FeatureCollection) {
	if fc == nil {
		return
	}
	for i := range fc.Features {
		f := &fc.Features[i]
		if f.Properties == nil {
			f.Properties = map[string]any{}
		}
		n := StateFacilities(StateName(f.Properties))
		f.Properties["facilities"] = n
		f.Properties["fill"] = FacilityColor(n)
	}
}

// StateShade is one state of the choropleth with its computed styling.
type StateShade struct {
	Name       string    `json:"name"`
	Facilities int       `json:"facilities"`
	Fill       string    `json:"fill"`
	Intensity  Intensity `json:"intensity"`
}

// IndiaMap is the choropleth payload served to the dashboard.
type IndiaMap struct {
	TotalFacilities int          `json:"total_facilities"`
	States          []StateShade `json:"states"`
}

// BuildIndiaMap shades every catalog state.
func BuildIndiaMap() IndiaMap {
	maxN := 0
	for _, l := range stateLocations {
		maxN = max(maxN, l.FacilityCount)
	}
	out := IndiaMap{TotalFacilities: TotalFacilities, States: make([]StateShade, 0, len(stateLocations))}
	for _, l := range stateLocations {
		n := StateFacilities(l.Name)
		out.States = append(out.States, StateShade{
			Name:       l.Name,
			Facilities: n,
			Fill:       FacilityColor(n),
			Intensity:  IntensityTier(n, maxN),
		})
	}
	return out
}
