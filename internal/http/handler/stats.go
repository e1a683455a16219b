package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"capilia/internal/model"
	"capilia/internal/service"
)

const (
	defaultLocationLimit  = 200
	defaultChemistryLimit = 50
	defaultProductLimit   = 50
)

// queryString returns a query value that outlives the request buffer.
func queryString(c *fiber.Ctx, key string) string {
	return utils.CopyString(c.Query(key))
}

// queryValues returns every value of a repeated query parameter.
func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, string(v))
	}
	return out
}

// queryIDs collects ids from repeated and comma separated values.
func queryIDs(c *fiber.Ctx, key string) []string {
	out := []string{}
	for _, v := range queryValues(c, key) {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		}
	}
	return out
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func companyFilters(c *fiber.Ctx) model.CompanyFilters {
	return model.NormalizeCompanyFilters(
		queryString(c, "country"),
		queryString(c, "state"),
		queryString(c, "city"),
		queryValues(c, "chemistries"),
		queryValues(c, "certifications"),
	)
}

// LocationStats godoc
// @Summary Company counts by location
// @Description level=point returns a GeoJSON FeatureCollection, other levels a list of {key,count,geometry}.
// @Tags stats
// @Produce json
// @Param level query string false "point, country, state or city" default(country)
// @Param limit query int false "1..10000" default(200)
// @Param country query string false "country filter"
// @Param state query string false "state filter"
// @Param city query string false "city filter"
// @Param chemistries query []string false "process codes, all must match" collectionFormat(multi)
// @Param certifications query []string false "certification codes, all must match" collectionFormat(multi)
// @Success 200 {array} model.LocationStat
// @Failure 400 {object} errorPayload
// @Router /api/stats/locations [get]
func LocationStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", defaultLocationLimit)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		level := model.LocationLevel(strings.ToLower(queryString(c, "level")))

		res, err := svc.Locations(c.UserContext(), level, limit, companyFilters(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ChemistryStats godoc
// @Summary Company counts per chemistry
// @Tags stats
// @Produce json
// @Param limit query int false "1..10000" default(50)
// @Param country query string false "country filter"
// @Param state query string false "state filter"
// @Param city query string false "city filter"
// @Param chemistries query []string false "process codes, all must match" collectionFormat(multi)
// @Param certifications query []string false "certification codes, all must match" collectionFormat(multi)
// @Success 200 {array} model.ChemistryStat
// @Failure 400 {object} errorPayload
// @Router /api/stats/chemistries [get]
func ChemistryStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", defaultChemistryLimit)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		rows, err := svc.Chemistries(c.UserContext(), limit, companyFilters(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		if rows == nil {
			rows = []model.ChemistryStat{}
		}
		return c.JSON(rows)
	}
}

// ProductStats godoc
// @Summary Product counts per company or per product type
// @Tags stats
// @Produce json
// @Param by query string false "company or global" default(company)
// @Param limit query int false "1..10000" default(50)
// @Param country query string false "country filter"
// @Param state query string false "state filter"
// @Param city query string false "city filter"
// @Param chemistries query []string false "process codes, all must match" collectionFormat(multi)
// @Param certifications query []string false "certification codes, all must match" collectionFormat(multi)
// @Success 200 {array} model.ProductStatByCompany
// @Failure 400 {object} errorPayload
// @Router /api/stats/products [get]
func ProductStats(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", defaultProductLimit)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		by := model.ProductsBy(strings.ToLower(queryString(c, "by")))

		res, err := svc.Products(c.UserContext(), by, limit, companyFilters(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// MissingCoordinates godoc
// @Summary Companies without lat/lon
// @Tags stats
// @Produce json
// @Param limit query int false "1..10000" default(200)
// @Success 200 {object} map[string]any
// @Router /api/stats/missing-coordinates [get]
func MissingCoordinates(svc service.StatsService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", defaultLocationLimit)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}

		res, err := svc.MissingCoordinates(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		items := res.Items
		if items == nil {
			items = []model.CompanyLocation{}
		}
		return c.JSON(fiber.Map{"data": items, "total": res.Total})
	}
}
