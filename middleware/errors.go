package middleware

import (
	"errors"

	"learnhub/apierr"
	"learnhub/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error returned by a handler as {"detail": ...}. Errors that are not
// *apierr.Error or *fiber.Error are logged and hidden behind a generic 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *apierr.Error
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &apiErr):
			if apiErr.Status >= fiber.StatusInternalServerError {
				log.Error("Request failed", requestFields(c, apiErr.Err)...)
			}
			body := fiber.Map{"detail": apiErr.Detail}
			if len(apiErr.Fields) > 0 {
				body["errors"] = apiErr.Fields
			}
			return c.Status(apiErr.Status).JSON(body)
		case errors.As(err, &fiberErr):
			return c.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
		default:
			log.Error("Unhandled error", requestFields(c, err)...)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
		}
	}
}

func requestFields(c *fiber.Ctx, err error) []interface{} {
	fields := []interface{}{
		"method", c.Method(),
		"path", c.Path(),
		"error", err,
	}
	if id, ok := c.Locals("requestid").(string); ok {
		fields = append(fields, "request_id", id)
	}
	return fields
}
