package domain

import (
	"github.com/google/uuid"
)

// VehicleID - идентификатор автомобиля (value object).
// Инвариант: никогда не бывает нулевым UUID.
type VehicleID struct {
	value uuid.UUID
}

// NewVehicleID создает VehicleID из UUID
func NewVehicleID(value uuid.UUID) (VehicleID, error) {
	if value == uuid.Nil {
		return VehicleID{}, ErrInvalidVehicleID
	}
	return VehicleID{value: value}, nil
}

// ParseVehicleID создает VehicleID из строкового представления UUID
func ParseVehicleID(value string) (VehicleID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return VehicleID{}, ErrInvalidVehicleID
	}
	return NewVehicleID(id)
}

// GenerateVehicleID создает новый случайный VehicleID
func GenerateVehicleID() VehicleID {
	return VehicleID{value: uuid.New()}
}

// IsZero сообщает, что идентификатор не был инициализирован
func (id VehicleID) IsZero() bool {
	return id.value == uuid.Nil
}

// Value возвращает UUID
func (id VehicleID) Value() uuid.UUID {
	return id.value
}

func (id VehicleID) String() string {
	return id.value.String()
}
