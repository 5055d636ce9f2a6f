package utils

import (
	"net/http"

	"eventia/internal/errmsg"

	"github.com/gofiber/fiber/v3"
)

// Every handler answers with the same envelope: "success" carries data,
// "fail" carries a client-correctable message, "error" marks server faults.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

func Success(c fiber.Ctx, statusCode int, data any) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": StatusSuccess,
		"data":   data,
	})
}

func Fail(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(fiber.Map{
		"status":  envelopeStatus(se.StatusCode),
		"message": se.Message,
	})
}

func Error(c fiber.Ctx, statusCode int, err error) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  envelopeStatus(statusCode),
		"message": err.Error(),
	})
}

func envelopeStatus(statusCode int) string {
	if statusCode >= http.StatusInternalServerError {
		return StatusError
	}
	return StatusFail
}
