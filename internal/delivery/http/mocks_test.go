package http

import (
	"context"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/usecase/fleet"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRentalService - мок сервиса аренды
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) RentVehicle(ctx context.Context, vehicleID domain.VehicleID, customerID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockRentalService) ReturnVehicle(ctx context.Context, vehicleID domain.VehicleID, customerID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, vehicleID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockRentalService) GetAvailableVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockRentalService) GetCustomerRentedVehicle(ctx context.Context, customerID string) (*domain.Vehicle, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

// MockFleetService - мок сервиса управления парком
type MockFleetService struct {
	mock.Mock
}

func (m *MockFleetService) CreateVehicle(ctx context.Context, req *fleet.CreateVehicleRequest) (*domain.Vehicle, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockFleetService) GetVehicleByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockFleetService) GetVehicleByLicensePlate(ctx context.Context, licensePlate string) (*domain.Vehicle, error) {
	args := m.Called(ctx, licensePlate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockFleetService) ListVehicles(ctx context.Context, limit, offset int) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockFleetService) SetVehicleStatus(ctx context.Context, id domain.VehicleID, status domain.VehicleStatus) (*domain.Vehicle, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

// MockUserRepository - мок репозитория учетных записей
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
