package domain

import (
	"strings"
	"time"
)

// Vehicle - агрегат автомобиля арендного парка.
// Единственный владелец своего изменяемого состояния: слои приложения
// меняют его только через Rent/Return/SetStatus, поля не экспортируются.
// Инвариант: currentCustomerID и rentedAt заполнены тогда и только тогда,
// когда status == StatusRented.
type Vehicle struct {
	id                VehicleID
	licensePlate      LicensePlate
	manufacturingDate ManufacturingDate
	model             string
	brand             string
	status            VehicleStatus
	currentCustomerID string
	rentedAt          *time.Time
}

// NewVehicle создает новый автомобиль в состоянии Available без арендатора.
// Модель и марка не могут быть пустыми; value objects проверяются на инициализированность.
func NewVehicle(id VehicleID, licensePlate LicensePlate, manufacturingDate ManufacturingDate, model, brand string) (*Vehicle, error) {
	if id.IsZero() || licensePlate.IsZero() || manufacturingDate.IsZero() {
		return nil, ErrInvalidVehicleData
	}

	model = strings.TrimSpace(model)
	brand = strings.TrimSpace(brand)
	if model == "" || brand == "" {
		return nil, ErrInvalidVehicleData
	}

	return &Vehicle{
		id:                id,
		licensePlate:      licensePlate,
		manufacturingDate: manufacturingDate,
		model:             model,
		brand:             brand,
		status:            StatusAvailable,
	}, nil
}

// RehydrateVehicle восстанавливает автомобиль из хранилища как есть,
// без прогона бизнес-правил создания. Только для слоя repository.
func RehydrateVehicle(
	id VehicleID,
	licensePlate LicensePlate,
	manufacturingDate ManufacturingDate,
	model, brand string,
	status VehicleStatus,
	currentCustomerID string,
	rentedAt *time.Time,
) *Vehicle {
	return &Vehicle{
		id:                id,
		licensePlate:      licensePlate,
		manufacturingDate: manufacturingDate,
		model:             model,
		brand:             brand,
		status:            status,
		currentCustomerID: currentCustomerID,
		rentedAt:          rentedAt,
	}
}

// Rent передает автомобиль в аренду клиенту.
// Разрешено только из состояния Available.
func (v *Vehicle) Rent(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrInvalidCustomerID
	}

	if !v.IsAvailableForRental() {
		return ErrVehicleNotAvailable
	}

	now := time.Now().UTC()
	v.status = StatusRented
	v.currentCustomerID = customerID
	v.rentedAt = &now

	return nil
}

// Return завершает аренду. Разрешено только из состояния Rented.
func (v *Vehicle) Return() error {
	if v.status != StatusRented {
		return ErrVehicleNotRented
	}

	v.status = StatusAvailable
	v.clearRental()

	return nil
}

// SetStatus - административное переключение состояния в обход workflow-правил.
// Если новое состояние не Rented, данные аренды сбрасываются.
func (v *Vehicle) SetStatus(status VehicleStatus) {
	v.status = status

	if status != StatusRented {
		v.clearRental()
	}
}

// IsAvailableForRental сообщает, доступен ли автомобиль для аренды
func (v *Vehicle) IsAvailableForRental() bool {
	return v.status == StatusAvailable
}

func (v *Vehicle) clearRental() {
	v.currentCustomerID = ""
	v.rentedAt = nil
}

// ID возвращает идентификатор автомобиля
func (v *Vehicle) ID() VehicleID {
	return v.id
}

// LicensePlate возвращает регистрационный номер
func (v *Vehicle) LicensePlate() LicensePlate {
	return v.licensePlate
}

// ManufacturingDate возвращает дату производства
func (v *Vehicle) ManufacturingDate() ManufacturingDate {
	return v.manufacturingDate
}

// Model возвращает модель
func (v *Vehicle) Model() string {
	return v.model
}

// Brand возвращает марку
func (v *Vehicle) Brand() string {
	return v.brand
}

// Status возвращает текущее состояние
func (v *Vehicle) Status() VehicleStatus {
	return v.status
}

// CurrentCustomerID возвращает идентификатор текущего арендатора
// или пустую строку, если автомобиль не арендован
func (v *Vehicle) CurrentCustomerID() string {
	return v.currentCustomerID
}

// RentedAt возвращает время начала аренды или nil
func (v *Vehicle) RentedAt() *time.Time {
	return v.rentedAt
}
