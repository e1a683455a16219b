package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"capilia/internal/service"
)

// CreateRFQ godoc
// @Summary Submit a request for quote
// @Tags rfqs
// @Accept json
// @Produce json
// @Param body body service.RFQRequest true "quote request"
// @Success 201 {object} model.RFQ
// @Failure 400 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /api/rfqs [post]
func CreateRFQ(svc service.RFQService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.RFQRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		rfq, err := svc.Submit(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rfq)
	}
}

// ListRFQs godoc
// @Summary List requests for quote, newest first
// @Tags rfqs
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "rows to skip" default(0)
// @Success 200 {object} service.RFQListResult
// @Failure 400 {object} errorPayload
// @Router /api/rfqs [get]
func ListRFQs(svc service.RFQService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", 10)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetRFQ godoc
// @Summary Get a request for quote
// @Tags rfqs
// @Produce json
// @Param id path string true "RFQ id (uuid)"
// @Success 200 {object} model.RFQ
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/rfqs/{id} [get]
func GetRFQ(svc service.RFQService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parsed, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		id := parsed.String()

		rfq, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rfq)
	}
}

// RFQArchive godoc
// @Summary Download the archived JSON document of a request for quote
// @Tags rfqs
// @Produce json
// @Param id path string true "RFQ id (uuid)"
// @Success 200 {file} file
// @Failure 404 {object} errorPayload
// @Router /api/rfqs/{id}/archive [get]
func RFQArchive(svc service.RFQService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parsed, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		id := parsed.String()

		rc, info, err := svc.Archive(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMEApplicationJSON
		}
		c.Set(fiber.HeaderContentType, ct)
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+id+`.json"`)
		// fasthttp closes rc once the body is written.
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
