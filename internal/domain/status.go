package domain

import (
	"encoding/json"
)

// VehicleStatus представляет состояние автомобиля в парке.
// В хранилище сохраняется числовое значение, в JSON - имя состояния.
type VehicleStatus int

const (
	// StatusAvailable - автомобиль доступен для аренды
	StatusAvailable VehicleStatus = 0
	// StatusRented - автомобиль арендован клиентом
	StatusRented VehicleStatus = 1
	// StatusMaintenance - автомобиль на обслуживании
	StatusMaintenance VehicleStatus = 2
	// StatusRetired - автомобиль выведен из парка
	StatusRetired VehicleStatus = 3
)

var statusNames = map[VehicleStatus]string{
	StatusAvailable:   "Available",
	StatusRented:      "Rented",
	StatusMaintenance: "Maintenance",
	StatusRetired:     "Retired",
}

// ParseVehicleStatus создает VehicleStatus из имени состояния
func ParseVehicleStatus(name string) (VehicleStatus, error) {
	for status, statusName := range statusNames {
		if statusName == name {
			return status, nil
		}
	}
	return 0, ErrInvalidVehicleStatus
}

// VehicleStatusFromValue создает VehicleStatus из числового значения хранилища
func VehicleStatusFromValue(value int) (VehicleStatus, error) {
	status := VehicleStatus(value)
	if _, ok := statusNames[status]; !ok {
		return 0, ErrInvalidVehicleStatus
	}
	return status, nil
}

// IsValid проверяет, что значение является известным состоянием
func (s VehicleStatus) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s VehicleStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// MarshalJSON сериализует состояние как имя
func (s VehicleStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON восстанавливает состояние из имени
func (s *VehicleStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return ErrInvalidVehicleStatus
	}

	status, err := ParseVehicleStatus(name)
	if err != nil {
		return err
	}

	*s = status
	return nil
}
