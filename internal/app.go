package internal

import (
	"log"
	"strings"

	"eventia/internal/auditlog"
	"eventia/internal/db"
	"eventia/internal/env"
	"eventia/internal/events"
	"eventia/internal/users"

	"github.com/gofiber/fiber/v3"
)

func SetupApp(deployment string, envRoot string, appVersion string) *fiber.App {
	app := fiber.New()

	env.Init(envRoot, appVersion)

	deploy := strings.TrimSpace(deployment)

	if err := db.InitDB(deploy); err != nil {
		log.Fatal("Could not connect to MongoDB")
		return nil
	}

	if err := db.InitCache(); err != nil {
		log.Fatal("Could not connect to Redis")
		return nil
	}

	if db.AuditLogs != nil {
		auditlog.Em = auditlog.NewEmitter(db.AuditLogs, deploy)
	} else {
		auditlog.Em = nil
	}

	api := app.Group("/api")

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Eventia API is running",
			"endpoints": fiber.Map{
				"events": "/api/events",
				"users":  "/api/users",
			},
		})
	})

	api.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	api.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + env.VERSION)
	})

	users.Routes(api)
	events.Routes(api)

	return app
}
