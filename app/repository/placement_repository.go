package repository

import (
	"context"

	"placement-dashboard/app/models"
)

// PlacementRepository produces the placement table for one render cycle.
// Implementations read their source on every call.
type PlacementRepository interface {
	Load(ctx context.Context) (*models.PlacementTable, error)
	Source() string
}
