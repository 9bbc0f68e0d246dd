package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"placement-dashboard/app/repository"
	"placement-dashboard/app/service"
	"placement-dashboard/config"
	"placement-dashboard/middleware"
)

func SetupRoutes(app *fiber.App, cfg config.Config, repo repository.PlacementRepository, log *zap.Logger) {
	// Services
	dashboardService := service.NewDashboardService(repo, log, cfg.AuthEnabled())
	authService := service.NewAuthService(cfg, log)

	app.Get("/healthz", dashboardService.Health)

	// Login (only active when a password hash is configured)
	app.Get("/login", authService.LoginPage)
	app.Post("/login", authService.Login)
	app.Post("/logout", authService.Logout)

	auth := middleware.AuthRequired(cfg)

	// Dashboard page & downloads
	app.Get("/", auth, dashboardService.Page)
	app.Get("/charts/:name.png", auth, dashboardService.GetChartPNG)
	app.Get("/export.csv", auth, dashboardService.ExportCSV)
	app.Get("/export.xlsx", auth, dashboardService.ExportXLSX)

	// JSON API
	api := app.Group("/api/v1", auth)
	api.Get("/years", dashboardService.GetYears)
	api.Get("/dashboard", dashboardService.GetDashboard)
	api.Get("/records", dashboardService.GetRecords)
}
