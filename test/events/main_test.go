package events

import (
	"flag"
	"os"
	"testing"

	"eventia/internal"

	"github.com/gofiber/fiber/v3"
)

var app *fiber.App

func TestMain(m *testing.M) {
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := "v1.4.0-test"

	flag.Parse()

	app = internal.SetupApp("test", *envRoot, appVersion)

	os.Exit(m.Run())
}
