package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"weather-screen/config"
	"weather-screen/internal/services/weather"
	"weather-screen/pkg/logger"
)

// SwaggerDocPath is where the generated OpenAPI document is read from.
var SwaggerDocPath = "docs/swagger.json"

type routes struct {
	service     *weather.WeatherService
	defaultDays int
	l           *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.WeatherService,
	screen config.ScreenConfig,
	l *logger.Logger,
) {
	r := &routes{
		service:     weatherService,
		defaultDays: screen.ForecastDays,
		l:           l,
	}
	if r.defaultDays <= 0 {
		r.defaultDays = config.DefaultForecastDays
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile(SwaggerDocPath)
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/locations", r.handleLocationsCall)
	app.Get("/forecast", r.handleForecastCall)
}
