package rental

import (
	"context"
	"sync"

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

// fakeVehicleRepo - потокобезопасный in-memory repository для сценарных тестов.
// Повторяет условную семантику postgres-реализации.
type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[string]*domain.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[string]*domain.Vehicle)}
}

func (f *fakeVehicleRepo) snapshot(vehicle *domain.Vehicle) *domain.Vehicle {
	return domain.RehydrateVehicle(
		vehicle.ID(),
		vehicle.LicensePlate(),
		vehicle.ManufacturingDate(),
		vehicle.Model(),
		vehicle.Brand(),
		vehicle.Status(),
		vehicle.CurrentCustomerID(),
		vehicle.RentedAt(),
	)
}

func (f *fakeVehicleRepo) Create(_ context.Context, vehicle *domain.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vehicles[vehicle.ID().String()] = f.snapshot(vehicle)
	return nil
}

func (f *fakeVehicleRepo) GetByID(_ context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vehicle, ok := f.vehicles[id.String()]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	return f.snapshot(vehicle), nil
}

func (f *fakeVehicleRepo) GetByLicensePlate(_ context.Context, plate domain.LicensePlate) (*domain.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vehicle := range f.vehicles {
		if vehicle.LicensePlate() == plate {
			return f.snapshot(vehicle), nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

func (f *fakeVehicleRepo) GetByCustomerID(_ context.Context, customerID string) (*domain.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vehicle := range f.vehicles {
		if vehicle.Status() == domain.StatusRented && vehicle.CurrentCustomerID() == customerID {
			return f.snapshot(vehicle), nil
		}
	}
	return nil, domain.ErrNoActiveRental
}

func (f *fakeVehicleRepo) GetAvailable(_ context.Context) ([]*domain.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*domain.Vehicle
	for _, vehicle := range f.vehicles {
		if vehicle.Status() == domain.StatusAvailable {
			result = append(result, f.snapshot(vehicle))
		}
	}
	return result, nil
}

func (f *fakeVehicleRepo) List(_ context.Context, _, _ int) ([]*domain.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*domain.Vehicle
	for _, vehicle := range f.vehicles {
		result = append(result, f.snapshot(vehicle))
	}
	return result, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, vehicle *domain.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.vehicles[vehicle.ID().String()]; !ok {
		return domain.ErrVehicleNotFound
	}
	f.vehicles[vehicle.ID().String()] = f.snapshot(vehicle)
	return nil
}

func (f *fakeVehicleRepo) UpdateIfStatus(_ context.Context, vehicle *domain.Vehicle, prev domain.VehicleStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.vehicles[vehicle.ID().String()]
	if !ok || stored.Status() != prev {
		return domain.ErrVehicleNotAvailable
	}
	f.vehicles[vehicle.ID().String()] = f.snapshot(vehicle)
	return nil
}

func (f *fakeVehicleRepo) UpdateIfRentedBy(_ context.Context, vehicle *domain.Vehicle, customerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.vehicles[vehicle.ID().String()]
	if !ok || stored.Status() != domain.StatusRented || stored.CurrentCustomerID() != customerID {
		return domain.ErrVehicleNotRentedByCustomer
	}
	f.vehicles[vehicle.ID().String()] = f.snapshot(vehicle)
	return nil
}

func (f *fakeVehicleRepo) ExistsWithLicensePlate(_ context.Context, plate domain.LicensePlate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vehicle := range f.vehicles {
		if vehicle.LicensePlate() == plate {
			return true, nil
		}
	}
	return false, nil
}
