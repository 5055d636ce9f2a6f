package events

import (
	"eventia/internal/auth"
	"eventia/internal/models"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	events := app.Group("/events")

	manage := []models.Role{models.RoleOrganizer, models.RoleAdmin}

	events.Get("/", listHandler)
	events.Get("/mine", mineHandler, auth.Protect, auth.RequireRoles(manage...))
	events.Post("/", createHandler, auth.Protect, auth.RequireRoles(manage...))

	events.Get("/:id", getHandler)
	events.Patch("/:id", updateHandler, auth.Protect, auth.RequireRoles(manage...))
	events.Delete("/:id", deleteHandler, auth.Protect, auth.RequireRoles(manage...))

	events.Post("/:id/register", registerHandler, auth.Protect)
	events.Get("/:id/capacity", capacityHandler)
	events.Get("/:id/logs", logsHandler, auth.Protect)
	events.Get("/:id/live", liveHandler)
}
