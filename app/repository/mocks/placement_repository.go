package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"placement-dashboard/app/models"
)

type MockPlacementRepo struct {
	mock.Mock
}

func (m *MockPlacementRepo) Load(ctx context.Context) (*models.PlacementTable, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlacementTable), args.Error(1)
}

func (m *MockPlacementRepo) Source() string {
	return "mock"
}
