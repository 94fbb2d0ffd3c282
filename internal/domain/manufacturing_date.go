package domain

import (
	"time"
)

// maxVehicleAgeYears - максимальный возраст автомобиля для включения в парк
const maxVehicleAgeYears = 5

// ManufacturingDate - дата производства автомобиля (value object).
// Инварианты на момент создания: не в будущем и не старше 5 лет.
// Валидность фиксируется при создании; IsValidForFleet проверяет те же правила
// против текущих часов, поэтому результат зависит от времени вызова.
type ManufacturingDate struct {
	value time.Time
}

// NewManufacturingDate создает ManufacturingDate, нормализуя значение до даты (UTC)
func NewManufacturingDate(value time.Time) (ManufacturingDate, error) {
	normalized := truncateToDate(value)
	if err := validateManufacturingDate(normalized); err != nil {
		return ManufacturingDate{}, err
	}
	return ManufacturingDate{value: normalized}, nil
}

// RehydrateManufacturingDate восстанавливает значение из хранилища без проверки
// возрастного окна. Автомобиль, валидный при создании, не должен становиться
// нечитаемым из-за прошедшего времени.
func RehydrateManufacturingDate(value time.Time) ManufacturingDate {
	return ManufacturingDate{value: truncateToDate(value)}
}

// IsValidForFleet проверяет правила парка против текущих часов.
// Результат нестабилен во времени: значение, валидное при создании,
// может вернуть false после истечения возрастного окна.
func (d ManufacturingDate) IsValidForFleet() bool {
	return validateManufacturingDate(d.value) == nil
}

// IsZero сообщает, что дата не была инициализирована
func (d ManufacturingDate) IsZero() bool {
	return d.value.IsZero()
}

// Value возвращает дату производства
func (d ManufacturingDate) Value() time.Time {
	return d.value
}

func (d ManufacturingDate) String() string {
	return d.value.Format("2006-01-02")
}

func validateManufacturingDate(value time.Time) error {
	today := truncateToDate(time.Now())

	if value.After(today) {
		return ErrInvalidManufacturingDate
	}

	oldestAllowed := today.AddDate(-maxVehicleAgeYears, 0, 0)
	if value.Before(oldestAllowed) {
		return ErrInvalidManufacturingDate
	}

	return nil
}

func truncateToDate(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
