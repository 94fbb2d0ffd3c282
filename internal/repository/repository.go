package repository

import (
	"context"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/google/uuid"
)

// VehicleRepository определяет контракт хранения агрегата Vehicle.
// Порт принадлежит приложению: реализации живут в postgres и cached.
type VehicleRepository interface {
	// Create добавляет новый автомобиль в парк
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByID возвращает автомобиль по идентификатору
	// или domain.ErrVehicleNotFound
	GetByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error)

	// GetByLicensePlate возвращает автомобиль по регистрационному номеру
	GetByLicensePlate(ctx context.Context, plate domain.LicensePlate) (*domain.Vehicle, error)

	// GetByCustomerID возвращает автомобиль, арендованный клиентом,
	// или domain.ErrNoActiveRental, если активной аренды нет
	GetByCustomerID(ctx context.Context, customerID string) (*domain.Vehicle, error)

	// GetAvailable возвращает все автомобили в состоянии Available
	GetAvailable(ctx context.Context) ([]*domain.Vehicle, error)

	// List возвращает список автомобилей с пагинацией
	List(ctx context.Context, limit, offset int) ([]*domain.Vehicle, error)

	// Update сохраняет автомобиль безусловно (административные операции)
	Update(ctx context.Context, vehicle *domain.Vehicle) error

	// UpdateIfStatus сохраняет автомобиль одним условным UPDATE,
	// только если в хранилище он все еще в состоянии prev.
	// При проигранной гонке возвращает domain.ErrVehicleNotAvailable.
	UpdateIfStatus(ctx context.Context, vehicle *domain.Vehicle, prev domain.VehicleStatus) error

	// UpdateIfRentedBy сохраняет автомобиль одним условным UPDATE,
	// только если в хранилище он арендован указанным клиентом.
	// Иначе возвращает domain.ErrVehicleNotRentedByCustomer.
	UpdateIfRentedBy(ctx context.Context, vehicle *domain.Vehicle, customerID string) error

	// ExistsWithLicensePlate проверяет занятость регистрационного номера
	ExistsWithLicensePlate(ctx context.Context, plate domain.LicensePlate) (bool, error)
}

// UserRepository определяет методы для работы с учетными записями
type UserRepository interface {
	// Create создает новую учетную запись
	Create(ctx context.Context, user *domain.User) error

	// GetByID возвращает учетную запись по ID
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail возвращает учетную запись по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
