package httpserver

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-screen/config"
)

func TestInitFiberServer_Config(t *testing.T) {
	cnf := config.Defaults()

	app := InitFiberServer(cnf)

	assert.Equal(t, "weather-screen", app.Config().AppName)
	assert.Equal(t, 10*time.Second, app.Config().ReadTimeout)
	assert.Equal(t, 120*time.Second, app.Config().IdleTimeout)
}

func TestInitFiberServer_RecoversPanics(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		t.Run(env, func(t *testing.T) {
			cnf := config.Defaults()
			cnf.App.Env = env

			app := InitFiberServer(cnf)
			app.Get("/boom", func(c *fiber.Ctx) error {
				panic("boom")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		})
	}
}

func TestInitFiberServer_HealthEndpoints(t *testing.T) {
	app := InitFiberServer(config.Defaults())

	for _, target := range []string{"/manage/health", "/manage/ready"} {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, target)
	}
}
