package rental

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/frontandrew/fleet/internal/repository"
)

// Service содержит бизнес-логику операций аренды.
// Сервис без состояния и безопасен для конкурентных запросов:
// арбитром гонок выступает условная запись в repository.
type Service struct {
	vehicleRepo repository.VehicleRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр RentalService
func NewService(vehicleRepo repository.VehicleRepository, logger logger.Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// RentVehicle передает автомобиль в аренду клиенту.
// Правило "максимум одна аренда на клиента" проверяется до попытки аренды,
// поэтому конфликт по клиенту возвращается даже для доступного автомобиля.
func (s *Service) RentVehicle(ctx context.Context, vehicleID domain.VehicleID, customerID string) (*domain.Vehicle, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, domain.ErrInvalidCustomerID
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	// Проверяем, что у клиента еще нет активной аренды
	_, err = s.vehicleRepo.GetByCustomerID(ctx, customerID)
	switch {
	case err == nil:
		s.logger.Warn("Customer already has an active rental", map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, domain.ErrCustomerHasActiveRental
	case !errors.Is(err, domain.ErrNoActiveRental):
		return nil, fmt.Errorf("failed to check customer rental: %w", err)
	}

	// Агрегат сам проверяет доступность
	if err := vehicle.Rent(customerID); err != nil {
		return nil, err
	}

	// Условная запись: фиксируется только если автомобиль все еще Available
	if err := s.vehicleRepo.UpdateIfStatus(ctx, vehicle, domain.StatusAvailable); err != nil {
		if errors.Is(err, domain.ErrVehicleNotAvailable) || errors.Is(err, domain.ErrCustomerHasActiveRental) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to persist rental: %w", err)
	}

	s.logger.Info("Vehicle rented", map[string]interface{}{
		"vehicle_id":  vehicle.ID().String(),
		"customer_id": customerID,
	})

	return vehicle, nil
}

// ReturnVehicle завершает аренду автомобиля указанным клиентом
func (s *Service) ReturnVehicle(ctx context.Context, vehicleID domain.VehicleID, customerID string) (*domain.Vehicle, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, domain.ErrInvalidCustomerID
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	// Вернуть автомобиль может только его текущий арендатор.
	// Сравнение строгое, без нормализации.
	if vehicle.CurrentCustomerID() != customerID {
		return nil, domain.ErrVehicleNotRentedByCustomer
	}

	if err := vehicle.Return(); err != nil {
		return nil, err
	}

	// Условная запись: фиксируется только если аренда этого клиента еще активна
	if err := s.vehicleRepo.UpdateIfRentedBy(ctx, vehicle, customerID); err != nil {
		if errors.Is(err, domain.ErrVehicleNotRentedByCustomer) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to persist return: %w", err)
	}

	s.logger.Info("Vehicle returned", map[string]interface{}{
		"vehicle_id":  vehicle.ID().String(),
		"customer_id": customerID,
	})

	return vehicle, nil
}

// GetAvailableVehicles возвращает все автомобили, доступные для аренды
func (s *Service) GetAvailableVehicles(ctx context.Context) ([]*domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get available vehicles: %w", err)
	}
	return vehicles, nil
}

// GetCustomerRentedVehicle возвращает автомобиль, арендованный клиентом,
// или domain.ErrNoActiveRental, если активной аренды нет
func (s *Service) GetCustomerRentedVehicle(ctx context.Context, customerID string) (*domain.Vehicle, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, domain.ErrInvalidCustomerID
	}

	vehicle, err := s.vehicleRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRental) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get customer rental: %w", err)
	}

	return vehicle, nil
}
