package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"placement-dashboard/app/models"
)

const exportSheet = "Placements"

// ExportCSV downloads the filtered table as CSV.
func (s *DashboardService) ExportCSV(c *fiber.Ctx) error {
	table, err := s.load(c)
	if err != nil {
		return loadFailed(c, err)
	}
	year := c.Query("year")

	var buf bytes.Buffer
	if err := WriteCSV(&buf, Filter(table, year)); err != nil {
		return err
	}
	c.Attachment(exportName(year, "csv"))
	return c.Send(buf.Bytes())
}

// ExportXLSX downloads the filtered table as an Excel workbook.
func (s *DashboardService) ExportXLSX(c *fiber.Ctx) error {
	table, err := s.load(c)
	if err != nil {
		return loadFailed(c, err)
	}
	year := c.Query("year")

	buf, err := WriteXLSX(Filter(table, year))
	if err != nil {
		return err
	}
	c.Attachment(exportName(year, "xlsx"))
	return c.Send(buf.Bytes())
}

func WriteCSV(buf *bytes.Buffer, view *models.PlacementTable) error {
	w := csv.NewWriter(buf)
	if err := w.Write(view.Columns()); err != nil {
		return err
	}
	if err := w.WriteAll(view.Rows()); err != nil {
		return err
	}
	return w.Error()
}

func WriteXLSX(view *models.PlacementTable) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	if err := setRow(f, 1, view.Columns()); err != nil {
		return nil, err
	}
	for i, row := range view.Rows() {
		if err := setRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

func setRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(exportSheet, cell, &row)
}

func exportName(year, ext string) string {
	year = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return -1
	}, year)
	if year == "" {
		year = models.AllYears
	}
	return "placements_" + year + "." + ext
}
