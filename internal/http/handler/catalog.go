package handler

import (
	"github.com/gofiber/fiber/v2"

	"capilia/internal/catalog"
	"capilia/internal/model"
)

// CatalogChemistries godoc
// @Summary Chemistry filter panel grouped by category
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Group[catalog.Chemistry]
// @Router /api/catalog/chemistries [get]
func CatalogChemistries() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.ChemistryGroups())
	}
}

// CatalogAccreditations godoc
// @Summary Accreditation filter panel grouped by category
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Group[catalog.Accreditation]
// @Router /api/catalog/accreditations [get]
func CatalogAccreditations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.AccreditationGroups())
	}
}

// CatalogLocations godoc
// @Summary State filter panel grouped by region
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.Group[catalog.StateLocation]
// @Router /api/catalog/locations [get]
func CatalogLocations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.LocationGroups())
	}
}

// FilteredFacilities godoc
// @Summary Filter summary with the estimated facility count
// @Tags catalog
// @Produce json
// @Param chemistries query []string false "chemistry ids" collectionFormat(multi)
// @Param accreditations query []string false "accreditation ids" collectionFormat(multi)
// @Param locations query []string false "location ids" collectionFormat(multi)
// @Success 200 {object} catalog.Summary
// @Router /api/catalog/facilities [get]
func FilteredFacilities() fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := catalog.FilterState{
			Chemistries:    queryIDs(c, "chemistries"),
			Accreditations: queryIDs(c, "accreditations"),
			Locations:      queryIDs(c, "locations"),
		}
		return c.JSON(f.Summarize())
	}
}

// IndiaMap godoc
// @Summary Choropleth shading for every catalog state
// @Tags map
// @Produce json
// @Success 200 {object} catalog.IndiaMap
// @Router /api/map/india [get]
func IndiaMap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.BuildIndiaMap())
	}
}

// AnnotateIndiaMap godoc
// @Summary Adds facilities and fill properties to a state GeoJSON
// @Tags map
// @Accept json
// @Produce json
// @Param body body model.FeatureCollection true "state boundaries"
// @Success 200 {object} model.FeatureCollection
// @Failure 400 {object} errorPayload
// @Router /api/map/india/annotate [post]
func AnnotateIndiaMap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var fc model.FeatureCollection
		if err := c.BodyParser(&fc); err != nil || fc.Type != "FeatureCollection" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "body must be a GeoJSON FeatureCollection")
		}
		if fc.Features == nil {
			fc.Features = []model.Feature{}
		}
		catalog.AnnotateStates(&fc)
		return c.JSON(fc)
	}
}

type productSearchResult struct {
	Items         []catalog.Product `json:"data"`
	Total         int               `json:"total"`
	ActiveFilters []string          `json:"active_filters"`
}

// SearchProducts godoc
// @Summary Search the product listing
// @Tags products
// @Produce json
// @Param name query string false "case-insensitive name substring"
// @Param cas query string false "CAS number substring"
// @Param accreditation query string false "accreditation option value" default(all)
// @Success 200 {object} productSearchResult
// @Router /api/products [get]
func SearchProducts() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := catalog.SearchFilters{
			ProductName:   queryString(c, "name"),
			CASNumber:     queryString(c, "cas"),
			Accreditation: queryString(c, "accreditation"),
		}
		items := catalog.SearchProducts(s)
		return c.JSON(productSearchResult{Items: items, Total: len(items), ActiveFilters: s.ActiveLabels()})
	}
}

// ProductAccreditations godoc
// @Summary Options of the product search accreditation picker
// @Tags products
// @Produce json
// @Success 200 {array} catalog.AccreditationOption
// @Router /api/products/accreditations [get]
func ProductAccreditations() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(catalog.AccreditationOptions())
	}
}
