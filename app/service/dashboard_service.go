package service

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"placement-dashboard/app/models"
	"placement-dashboard/app/repository"
	"placement-dashboard/app/view"
)

// DashboardService serves the dashboard. Each request is one render cycle:
// the table is loaded again and every figure recomputed.
type DashboardService struct {
	repo        repository.PlacementRepository
	log         *zap.Logger
	authEnabled bool
}

func NewDashboardService(repo repository.PlacementRepository, log *zap.Logger, authEnabled bool) *DashboardService {
	return &DashboardService{repo: repo, log: log, authEnabled: authEnabled}
}

func (s *DashboardService) load(c *fiber.Ctx) (*models.PlacementTable, error) {
	table, err := s.repo.Load(c.UserContext())
	if err != nil {
		s.log.Error("placement load failed",
			zap.String("source", s.repo.Source()),
			zap.Any("request_id", c.Locals("request_id")),
			zap.Error(err))
		return nil, err
	}
	s.log.Debug("placements loaded",
		zap.String("source", s.repo.Source()),
		zap.Int("rows", table.Len()))
	return table, nil
}

// Page renders the HTML dashboard for ?year=.
func (s *DashboardService) Page(c *fiber.Ctx) error {
	table, err := s.load(c)
	if err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, err)
	}

	d := BuildDashboard(table, c.Query("year"))

	var buf bytes.Buffer
	if err := view.Dashboard(&buf, d, s.authEnabled); err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// GetYears returns the year selector options.
func (s *DashboardService) GetYears(c *fiber.Ctx) error {
	table, err := s.load(c)
	if err != nil {
		return loadFailed(c, err)
	}
	return c.JSON(fiber.Map{"data": YearOptions(table)})
}

// GetDashboard returns counts and figures for ?year= as JSON.
func (s *DashboardService) GetDashboard(c *fiber.Ctx) error {
	table, err := s.load(c)
	if err != nil {
		return loadFailed(c, err)
	}
	return c.JSON(BuildDashboard(table, c.Query("year")))
}

// GetRecords returns the filtered table.
func (s *DashboardService) GetRecords(c *fiber.Ctx) error {
	table, err := s.load(c)
	if err != nil {
		return loadFailed(c, err)
	}
	filtered := Filter(table, c.Query("year"))
	return c.JSON(fiber.Map{
		"columns": filtered.Columns(),
		"data":    filtered.Rows(),
		"total":   filtered.Len(),
	})
}

func (s *DashboardService) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "source": s.repo.Source()})
}

func (s *DashboardService) renderError(c *fiber.Ctx, status int, err error) error {
	var buf bytes.Buffer
	if rerr := view.Error(&buf, status, err.Error()); rerr != nil {
		return fiber.NewError(status, err.Error())
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func loadFailed(c *fiber.Ctx, err error) error {
	var le *models.LoadError
	if errors.As(err, &le) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": le.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load placements: " + err.Error()})
}
