package errors

import (
	"log"

	"har-media-exporter/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if ee, ok := err.(*ExtractError); ok {
		if ee.Err != nil {
			log.Printf("Extract error [%s]: %v", ee.Code, ee.Err)
		}

		var status int
		switch ee.Code {
		case "invalid_file_extension", "malformed_input":
			status = fiber.StatusBadRequest
		case "session_not_found", "media_not_found":
			status = fiber.StatusNotFound
		case "decode_error":
			status = fiber.StatusUnprocessableEntity
		default:
			status = fiber.StatusInternalServerError
		}

		// Client only sees code + translated message, never the wrapped error.
		return c.Status(status).JSON(fiber.Map{
			"error":   ee.Code,
			"message": i18n.T(ee.Code, ee.Message),
		})
	}

	log.Printf("Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": i18n.T("internal_error", "Internal server error"),
	})
}
