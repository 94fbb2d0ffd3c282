package domain

import (
	"regexp"
	"strings"
)

const (
	licensePlateMinLength = 3
	licensePlateMaxLength = 10
)

var licensePlatePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// LicensePlate - регистрационный номер автомобиля (value object).
// Хранится в нормализованном виде: верхний регистр, только [A-Z0-9],
// длина от 3 до 10 символов. Идентичность определяется нормализованным значением.
type LicensePlate struct {
	value string
}

// NewLicensePlate создает LicensePlate из строки, нормализуя регистр
func NewLicensePlate(value string) (LicensePlate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))

	if normalized == "" {
		return LicensePlate{}, ErrInvalidLicensePlate
	}
	if len(normalized) < licensePlateMinLength || len(normalized) > licensePlateMaxLength {
		return LicensePlate{}, ErrInvalidLicensePlate
	}
	if !licensePlatePattern.MatchString(normalized) {
		return LicensePlate{}, ErrInvalidLicensePlate
	}

	return LicensePlate{value: normalized}, nil
}

// IsZero сообщает, что номер не был инициализирован
func (p LicensePlate) IsZero() bool {
	return p.value == ""
}

// Value возвращает нормализованное значение номера
func (p LicensePlate) Value() string {
	return p.value
}

func (p LicensePlate) String() string {
	return p.value
}
