package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"placement-dashboard/app/models"
)

type csvRepository struct {
	path string
}

// NewCSVRepository reads placements from a delimited file at path.
func NewCSVRepository(path string) PlacementRepository {
	return &csvRepository{path: path}
}

func (r *csvRepository) Source() string { return "csv:" + r.path }

func (r *csvRepository) Load(ctx context.Context) (*models.PlacementTable, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, &models.LoadError{Source: r.Source(), Err: err}
	}
	defer file.Close()

	table, err := ReadCSV(ctx, file)
	if err != nil {
		return nil, &models.LoadError{Source: r.Source(), Err: err}
	}
	return table, nil
}

// ReadCSV parses a header line followed by records.
func ReadCSV(ctx context.Context, rd io.Reader) (*models.PlacementTable, error) {
	reader := csv.NewReader(rd)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file: no header line")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range header {
		// Excel likes to prefix a BOM.
		header[i] = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
	}

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}
		rows = append(rows, record)
	}

	return models.NewPlacementTable(header, rows)
}
