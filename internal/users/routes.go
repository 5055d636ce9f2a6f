package users

import (
	"eventia/internal/auth"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	users := app.Group("/users")

	users.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	users.Post("/register", registerHandler)
	users.Post("/login", loginHandler)

	users.Get("/profile", getProfileHandler, auth.Protect)
	users.Patch("/profile", updateProfileHandler, auth.Protect)

	users.Get("/logs", logsHandler, auth.Protect)
}
