package service

import (
	"bytes"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"placement-dashboard/app/models"
)

var errUnknownChart = errors.New("unknown chart")

// GetChartPNG renders one chart server side: years, branches or recruiters.
func (s *DashboardService) GetChartPNG(c *fiber.Ctx) error {
	table, err := s.load(c)
	if err != nil {
		return loadFailed(c, err)
	}

	var buf bytes.Buffer
	if err := RenderChartPNG(&buf, c.Params("name"), table, c.Query("year")); err != nil {
		switch {
		case errors.Is(err, errUnknownChart):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, ErrEmptyView):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// RenderChartPNG draws the named chart for the selection.
func RenderChartPNG(w io.Writer, name string, table *models.PlacementTable, year string) error {
	view := Filter(table, year)
	period := models.PeriodLabel(year)

	switch name {
	case "years":
		return renderBarPNG(w, "Year-wise Placement Count", YearHistogram(table))
	case "branches":
		return renderPiePNG(w, "Branch-wise Distribution ("+period+")", BranchHistogram(view))
	case "recruiters":
		return renderBarPNG(w, "Top 10 Recruiters ("+period+")", TopRecruiters(view, RecruiterLimit))
	}
	return errUnknownChart
}

func renderBarPNG(w io.Writer, title string, counts models.GroupCounts) error {
	if counts.Empty() {
		return ErrEmptyView
	}

	bars := make([]chart.Value, len(counts))
	top := 0
	for i, gc := range counts {
		bars[i] = chart.Value{Label: gc.Key, Value: float64(gc.Count)}
		if gc.Count > top {
			top = gc.Count
		}
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      200 + 80*len(bars),
		Height:     480,
		BarWidth:   50,
		BarSpacing: 30,
		Background: chart.Style{
			Padding:   chart.Box{Top: 48},
			FillColor: drawing.ColorTransparent,
		},
		Canvas: chart.Style{FillColor: drawing.ColorTransparent},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top)},
		},
		Bars: bars,
	}
	if bc.Width < 640 {
		bc.Width = 640
	}
	return bc.Render(chart.PNG, w)
}

func renderPiePNG(w io.Writer, title string, counts models.GroupCounts) error {
	if counts.Empty() {
		return ErrEmptyView
	}

	values := make([]chart.Value, len(counts))
	for i, gc := range counts {
		values[i] = chart.Value{Label: gc.Key, Value: float64(gc.Count)}
	}

	pc := chart.PieChart{
		Title:      title,
		Width:      640,
		Height:     640,
		Background: chart.Style{FillColor: drawing.ColorTransparent},
		Canvas:     chart.Style{FillColor: drawing.ColorTransparent},
		Values:     values,
	}
	return pc.Render(chart.PNG, w)
}
