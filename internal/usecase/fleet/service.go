package fleet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/frontandrew/fleet/internal/repository"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// CreateVehicleRequest - запрос на добавление автомобиля в парк
type CreateVehicleRequest struct {
	LicensePlate      string `json:"licensePlate"`
	ManufacturingDate string `json:"manufacturingDate"` // формат 2006-01-02
	Model             string `json:"model"`
	Brand             string `json:"brand"`
}

// Service содержит бизнес-логику управления парком
type Service struct {
	vehicleRepo repository.VehicleRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр FleetService
func NewService(vehicleRepo repository.VehicleRepository, logger logger.Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// CreateVehicle добавляет новый автомобиль в парк в состоянии Available
func (s *Service) CreateVehicle(ctx context.Context, req *CreateVehicleRequest) (*domain.Vehicle, error) {
	plate, err := domain.NewLicensePlate(req.LicensePlate)
	if err != nil {
		return nil, err
	}

	dateValue, err := time.Parse("2006-01-02", req.ManufacturingDate)
	if err != nil {
		return nil, domain.ErrInvalidManufacturingDate
	}

	manufacturingDate, err := domain.NewManufacturingDate(dateValue)
	if err != nil {
		return nil, err
	}

	vehicle, err := domain.NewVehicle(domain.GenerateVehicleID(), plate, manufacturingDate, req.Model, req.Brand)
	if err != nil {
		return nil, err
	}

	// Проверяем занятость номера до записи
	exists, err := s.vehicleRepo.ExistsWithLicensePlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("failed to check license plate: %w", err)
	}
	if exists {
		s.logger.Warn("Vehicle already exists", map[string]interface{}{
			"license_plate": plate.Value(),
		})
		return nil, domain.ErrVehicleAlreadyExists
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		// Уникальный индекс по номеру может сработать при гонке двух создании
		if errors.Is(err, domain.ErrVehicleAlreadyExists) {
			return nil, err
		}
		s.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.Info("Vehicle created", map[string]interface{}{
		"vehicle_id":    vehicle.ID().String(),
		"license_plate": plate.Value(),
	})

	return vehicle, nil
}

// GetVehicleByID возвращает автомобиль по идентификатору
func (s *Service) GetVehicleByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

// GetVehicleByLicensePlate возвращает автомобиль по регистрационному номеру
func (s *Service) GetVehicleByLicensePlate(ctx context.Context, licensePlate string) (*domain.Vehicle, error) {
	plate, err := domain.NewLicensePlate(licensePlate)
	if err != nil {
		return nil, err
	}
	return s.vehicleRepo.GetByLicensePlate(ctx, plate)
}

// ListVehicles возвращает список автомобилей парка с пагинацией
func (s *Service) ListVehicles(ctx context.Context, limit, offset int) ([]*domain.Vehicle, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.vehicleRepo.List(ctx, limit, offset)
}

// SetVehicleStatus - административное переключение состояния автомобиля
// в обход workflow-правил аренды. При переводе из Rented данные аренды сбрасываются.
func (s *Service) SetVehicleStatus(ctx context.Context, id domain.VehicleID, status domain.VehicleStatus) (*domain.Vehicle, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidVehicleStatus
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	previous := vehicle.Status()
	vehicle.SetStatus(status)

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to persist status: %w", err)
	}

	s.logger.Info("Vehicle status overridden", map[string]interface{}{
		"vehicle_id": vehicle.ID().String(),
		"from":       previous.String(),
		"to":         status.String(),
	})

	return vehicle, nil
}
