package model

import (
	"fmt"
	"strings"
)

// FeatureCollection is a GeoJSON feature collection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a GeoJSON feature. Properties is free-form so the same type carries
// point aggregates and annotated map regions.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   *Geometry      `json:"geometry"`
}

// Geometry keeps coordinates raw because polygons nest deeper than points.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// NewFeatureCollection returns an empty, non-nil collection.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
}

// PointFeature builds the feature emitted for one company at point level.
// The key joins the non-empty address parts, or falls back to "company:<id>".
func PointFeature(c CompanyLocation) Feature {
	var parts []string
	for _, p := range []string{c.Location, c.City, c.State, c.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	key := strings.Join(parts, ", ")
	if key == "" {
		key = fmt.Sprintf("company:%d", c.ID)
	}

	var lat, lon float64
	if c.Lat != nil {
		lat = *c.Lat
	}
	if c.Lon != nil {
		lon = *c.Lon
	}
	return Feature{
		Type: "Feature",
		Properties: map[string]any{
			"key":        key,
			"count":      1,
			"company_id": c.ID,
		},
		Geometry: &Geometry{
			Type:        "Point",
			Coordinates: []float64{lon, lat},
		},
	}
}
