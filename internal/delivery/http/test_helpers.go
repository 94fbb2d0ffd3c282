package http

import (
	"testing"
	"time"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/stretchr/testify/require"
)

// CreateTestVehicle создает тестовый автомобиль в состоянии Available
func CreateTestVehicle(t *testing.T, plate string) *domain.Vehicle {
	t.Helper()

	licensePlate, err := domain.NewLicensePlate(plate)
	require.NoError(t, err)

	manufacturingDate, err := domain.NewManufacturingDate(time.Now().UTC().AddDate(-1, 0, 0))
	require.NoError(t, err)

	vehicle, err := domain.NewVehicle(domain.GenerateVehicleID(), licensePlate, manufacturingDate, "Octavia", "Skoda")
	require.NoError(t, err)

	return vehicle
}

// CreateRentedTestVehicle создает тестовый автомобиль, арендованный клиентом
func CreateRentedTestVehicle(t *testing.T, plate, customerID string) *domain.Vehicle {
	t.Helper()

	vehicle := CreateTestVehicle(t, plate)
	require.NoError(t, vehicle.Rent(customerID))

	return vehicle
}
