package service

import (
	"bytes"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"placement-dashboard/app/view"
	"placement-dashboard/config"
	"placement-dashboard/middleware"
	"placement-dashboard/utils"
)

const sessionSubject = "dashboard"

type loginRequest struct {
	Password string `json:"password" form:"password"`
}

// AuthService implements the optional password gate.
type AuthService struct {
	cfg config.Config
	log *zap.Logger
}

func NewAuthService(cfg config.Config, log *zap.Logger) *AuthService {
	return &AuthService{cfg: cfg, log: log}
}

func (s *AuthService) LoginPage(c *fiber.Ctx) error {
	if !s.cfg.AuthEnabled() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return s.renderLogin(c, fiber.StatusOK, "")
}

// Login checks the password and sets the session cookie. JSON clients get
// the token in the body instead of a redirect.
func (s *AuthService) Login(c *fiber.Ctx) error {
	if !s.cfg.AuthEnabled() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	wantsJSON := c.Is("json")
	if !utils.CheckPasswordHash(req.Password, s.cfg.PasswordHash) {
		s.log.Warn("dashboard login rejected", zap.String("ip", c.IP()))
		if wantsJSON {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid password"})
		}
		return s.renderLogin(c, fiber.StatusUnauthorized, "Invalid password")
	}

	token, err := utils.GenerateToken(sessionSubject, s.cfg.JWTSecret, s.cfg.SessionTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.cfg.SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if wantsJSON {
		return c.JSON(fiber.Map{"token": token, "expiresIn": int(s.cfg.SessionTTL.Seconds())})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

func (s *AuthService) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.SessionCookie)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (s *AuthService) renderLogin(c *fiber.Ctx, status int, message string) error {
	var buf bytes.Buffer
	if err := view.Login(&buf, message); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}
