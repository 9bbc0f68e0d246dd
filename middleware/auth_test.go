package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement-dashboard/config"
	"placement-dashboard/utils"
)

func setupAuthApp(cfg config.Config) *fiber.App {
	app := fiber.New()
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/", AuthRequired(cfg), ok)
	app.Get("/api/v1/years", AuthRequired(cfg), ok)
	return app
}

func TestAuthRequired(t *testing.T) {
	cfg := config.Config{PasswordHash: "$2a$10$placeholder", JWTSecret: "secret"}

	t.Run("Success: gate disabled", func(t *testing.T) {
		app := setupAuthApp(config.Config{})

		resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Success: cookie", func(t *testing.T) {
		app := setupAuthApp(cfg)
		token, err := utils.GenerateToken("dashboard", cfg.JWTSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Cookie", SessionCookie+"="+token)
		resp, _ := app.Test(req)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Success: bearer header", func(t *testing.T) {
		app := setupAuthApp(cfg)
		token, err := utils.GenerateToken("dashboard", cfg.JWTSecret, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/years", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, _ := app.Test(req)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("Error: page redirects to login", func(t *testing.T) {
		app := setupAuthApp(cfg)

		resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, 303, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("Error: API returns 401", func(t *testing.T) {
		app := setupAuthApp(cfg)

		req := httptest.NewRequest("GET", "/api/v1/years", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		resp, _ := app.Test(req)
		assert.Equal(t, 401, resp.StatusCode)
	})
}
