// @title Eventia API
// @version 1.4.0
// @description Event management API for capacity-bounded registration, role-gated event management, and audit trails.
// @BasePath /api
// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization
// @description Provide the user bearer token as `Bearer <token>`.

// @Tag.name Meta
// @Tag.description Operational probes and metadata about the service.

// @Tag.name Events
// @Tag.description Browse, manage and register for events.

// @Tag.name Users
// @Tag.description Accounts, sessions and personal audit trails.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"eventia/internal"
	"eventia/internal/env"
	"eventia/internal/swagger"

	"github.com/gofiber/fiber/v3"
)

func main() {
	deployment := flag.String("deployment", "", "deployment profile (dev|test|prod)")
	portFlag := flag.String("port", "", "port to listen on")
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	deploy := strings.TrimSpace(*deployment)
	if deploy == "" {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Println("Usage: server --deployment <type> --port <port> [--env-root <dir>] [--app-version <version>]")
			os.Exit(1)
		}
		deploy = strings.TrimSpace(args[0])
	}

	if deploy == "" {
		log.Fatal("deployment is required")
	}

	port := strings.TrimSpace(*portFlag)
	if port == "" {
		log.Fatal("port is required")
	}

	app := internal.SetupApp(deploy, *envRoot, *appVersion)
	swagger.Register(app)

	fmt.Println("APP VERSION:", env.VERSION)

	if err := app.Listen(fmt.Sprintf(":%s", port), fiber.ListenConfig{
		EnablePrefork: env.PREFORK,
	}); err != nil {
		log.Fatalf("Error listening on port %s: %v", port, err)
	}
}
