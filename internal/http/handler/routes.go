package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"capilia/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, statsSvc service.StatsService, rfqSvc service.RFQService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	stats := api.Group("/stats")
	stats.Get("/locations", LocationStats(statsSvc))
	stats.Get("/chemistries", ChemistryStats(statsSvc))
	stats.Get("/products", ProductStats(statsSvc))
	stats.Get("/missing-coordinates", MissingCoordinates(statsSvc))

	cat := api.Group("/catalog")
	cat.Get("/chemistries", CatalogChemistries())
	cat.Get("/accreditations", CatalogAccreditations())
	cat.Get("/locations", CatalogLocations())
	cat.Get("/facilities", FilteredFacilities())

	api.Get("/map/india", IndiaMap())
	api.Post("/map/india/annotate", AnnotateIndiaMap())

	api.Get("/products", SearchProducts())
	api.Get("/products/accreditations", ProductAccreditations())

	api.Post("/rfqs", CreateRFQ(rfqSvc))
	api.Get("/rfqs", ListRFQs(rfqSvc))
	api.Get("/rfqs/:id", GetRFQ(rfqSvc))
	api.Get("/rfqs/:id/archive", RFQArchive(rfqSvc))
}
