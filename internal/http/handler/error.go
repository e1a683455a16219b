package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"capilia/internal/http/middleware"
	"capilia/internal/service"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	s, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return s
}

// writeError renders the error envelope. message must be safe to show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// serviceErrors maps service sentinel errors to a status and code. Their
// messages are safe to return as-is.
var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrInvalidLevel, fiber.StatusBadRequest, "INVALID_LEVEL"},
	{service.ErrInvalidBy, fiber.StatusBadRequest, "INVALID_BY"},
	{service.ErrInvalidLimit, fiber.StatusBadRequest, "INVALID_LIMIT"},
	{service.ErrIDRequired, fiber.StatusBadRequest, "INVALID_ID"},
	{service.ErrInvalidQuantity, fiber.StatusBadRequest, "VALIDATION_ERROR"},
	{service.ErrInvalidUnit, fiber.StatusBadRequest, "VALIDATION_ERROR"},
	{service.ErrDeliveryLocationRequired, fiber.StatusBadRequest, "VALIDATION_ERROR"},
	{service.ErrProductNotFound, fiber.StatusUnprocessableEntity, "PRODUCT_NOT_FOUND"},
	{service.ErrRFQNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{service.ErrArchiveUnavailable, fiber.StatusNotFound, "ARCHIVE_UNAVAILABLE"},
}

// writeServiceError translates a service error; anything unknown becomes a 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return writeError(c, m.status, m.code, m.err.Error())
		}
	}
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// fiberErrors covers the statuses fiber itself produces.
var fiberErrors = map[int]errorEnvelope{
	fiber.StatusBadRequest:            {"BAD_REQUEST", "bad request"},
	fiber.StatusNotFound:              {"NOT_FOUND", "resource not found"},
	fiber.StatusMethodNotAllowed:      {"METHOD_NOT_ALLOWED", "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {"PAYLOAD_TOO_LARGE", "request body too large"},
}

// ErrorHandler renders errors that escape handlers. Anything that is not a
// *fiber.Error is logged and answered with a bare 500.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			log.WithFields(logrus.Fields{
				"request_id": requestIDFromCtx(c),
				"path":       c.Path(),
			}).WithError(err).Error("unhandled_error")
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		if env, ok := fiberErrors[fe.Code]; ok {
			return writeError(c, fe.Code, env.Code, env.Message)
		}
		return writeError(c, fe.Code, "INTERNAL_ERROR", "internal server error")
	}
}
