package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ManuelReschke/PixelShop/app/repository"
	"github.com/ManuelReschke/PixelShop/internal/pkg/cache"
	"github.com/ManuelReschke/PixelShop/internal/pkg/catalog"
	"github.com/ManuelReschke/PixelShop/internal/pkg/database"
	"github.com/ManuelReschke/PixelShop/internal/pkg/env"
	"github.com/ManuelReschke/PixelShop/internal/pkg/events"
	"github.com/ManuelReschke/PixelShop/internal/pkg/metrics/counter"
	"github.com/ManuelReschke/PixelShop/internal/pkg/payment"
	"github.com/ManuelReschke/PixelShop/internal/pkg/router"
	"github.com/ManuelReschke/PixelShop/views"
)

func main() {
	app, shutdown := NewApplication()
	defer shutdown()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() (*fiber.App, func()) {
	env.SetupEnvFile()
	if env.IsDev() {
		fiberlog.SetLevel(fiberlog.LevelDebug)
	}
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())
	cache.SetupCache()

	shopCatalog, err := catalog.Load(env.GetEnv("CATALOG_FILE", ""))
	if err != nil {
		panic(fmt.Sprintf("Could not load catalog: %v", err))
	}

	var counters *counter.Store
	if cache.Available() {
		counters = counter.NewStore(cache.GetClient())
	}
	publisher := events.NewPublisherFromEnv()

	// Define possible base paths
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/pixelshop to project root
		"../../../", // Fallback
	}

	// Find the correct base path
	basePath := ""
	for _, path := range basePaths {
		if _, err := os.Stat(path + "public"); !os.IsNotExist(err) {
			basePath = path
			break
		}
	}

	if basePath == "" {
		panic("Could not find project root directory")
	}

	// init fiber app
	app := fiber.New(fiber.Config{
		Views:   views.NewEngine(),
		AppName: "PixelShop",
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: basePath + "public/docs/v1/openapi.yml",
		Path:     "v1",
		Title:    "PixelShop API",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app, &router.Services{
		Settings:       router.SettingsFromEnv(),
		Catalog:        shopCatalog,
		Repos:          repository.GetGlobalRepositories(),
		Provider:       payment.NewStripeClientFromEnv(),
		Publisher:      publisher,
		Counters:       counters,
		LimiterStorage: router.NewLimiterStorage(),
	})

	return app, publisher.Close
}
