package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"placement-dashboard/app/models"
)

type sqlRepository struct {
	db     *sql.DB
	driver string
	table  string
}

// NewSQLRepository reads every row of table. Works with the postgres and
// sqlite3 drivers.
func NewSQLRepository(db *sql.DB, driver, table string) PlacementRepository {
	return &sqlRepository{db: db, driver: driver, table: table}
}

func (r *sqlRepository) Source() string { return r.driver + ":" + r.table }

func (r *sqlRepository) Load(ctx context.Context) (*models.PlacementTable, error) {
	query := `SELECT * FROM ` + pq.QuoteIdentifier(r.table)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &models.LoadError{Source: r.Source(), Err: err}
	}
	defer rows.Close()

	table, err := scanTable(rows)
	if err != nil {
		return nil, &models.LoadError{Source: r.Source(), Err: err}
	}
	return table, nil
}

func scanTable(rows *sql.Rows) (*models.PlacementTable, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var records [][]string
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(records)+1, err)
		}

		record := make([]string, len(columns))
		for i, c := range cells {
			if c.Valid {
				record[i] = c.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return models.NewPlacementTable(columns, records)
}
