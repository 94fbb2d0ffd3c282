package fleet

import (
	"context"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockVehicleRepository - мок repository для unit-тестов сервиса
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByLicensePlate(ctx context.Context, plate domain.LicensePlate) (*domain.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetByCustomerID(ctx context.Context, customerID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAvailable(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, limit, offset int) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateIfStatus(ctx context.Context, vehicle *domain.Vehicle, prev domain.VehicleStatus) error {
	args := m.Called(ctx, vehicle, prev)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateIfRentedBy(ctx context.Context, vehicle *domain.Vehicle, customerID string) error {
	args := m.Called(ctx, vehicle, customerID)
	return args.Error(0)
}

func (m *MockVehicleRepository) ExistsWithLicensePlate(ctx context.Context, plate domain.LicensePlate) (bool, error) {
	args := m.Called(ctx, plate)
	return args.Bool(0), args.Error(1)
}
