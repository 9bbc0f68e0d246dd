package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"placement-dashboard/config"
	"placement-dashboard/utils"
)

// SessionCookie holds the dashboard session token.
const SessionCookie = "dashboard_session"

// AuthRequired guards the dashboard when a password hash is configured.
// Browser routes are redirected to /login, API routes get 401.
func AuthRequired(cfg config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.AuthEnabled() {
			return c.Next()
		}

		token := c.Cookies(SessionCookie)
		if token == "" {
			if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}

		claims, err := utils.ValidateToken(token, cfg.JWTSecret)
		if err != nil {
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
			}
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals("session_subject", claims.Subject)
		return c.Next()
	}
}
