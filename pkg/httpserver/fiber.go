package httpserver

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"weather-screen/config"
)

// InitFiberServer builds the fiber app behind the HTTP facade. Zero timeouts
// leave fiber's defaults in place; panic stack traces are printed outside
// production.
func InitFiberServer(cnf *config.Config) *fiber.App {
	s := fiber.New(fiber.Config{
		AppName:      cnf.App.Name,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ReadTimeout:  seconds(cnf.Server.ReadTimeout),
		WriteTimeout: seconds(cnf.Server.WriteTimeout),
		IdleTimeout:  seconds(cnf.Server.IdleTimeout),
		// Only query-string GETs are served.
		BodyLimit: 64 * 1024,
	})

	s.Use(recover.New(recover.Config{
		EnableStackTrace: !cnf.IsProduction(),
	}))
	s.Use(cors.New())
	s.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint:  "/manage/health",
		ReadinessEndpoint: "/manage/ready",
	}))

	return s
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
