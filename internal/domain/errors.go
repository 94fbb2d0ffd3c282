package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения.
// Граница (HTTP) классифицирует их через errors.Is, никогда по тексту сообщения.

// Validation errors (некорректный ввод, ошибка вызывающей стороны)
var (
	ErrInvalidVehicleID         = errors.New("invalid vehicle id")
	ErrInvalidLicensePlate      = errors.New("invalid license plate")
	ErrInvalidManufacturingDate = errors.New("invalid manufacturing date")
	ErrInvalidVehicleData       = errors.New("invalid vehicle data")
	ErrInvalidVehicleStatus     = errors.New("invalid vehicle status")
	ErrInvalidCustomerID        = errors.New("customer id cannot be empty")
)

// Not found errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrNoActiveRental  = errors.New("no active rental found for customer")
)

// Conflict errors (нарушение бизнес-инварианта в текущем состоянии)
var (
	ErrVehicleAlreadyExists       = errors.New("vehicle already exists")
	ErrVehicleNotAvailable        = errors.New("vehicle is not available for rental")
	ErrVehicleNotRented           = errors.New("vehicle is not currently rented")
	ErrVehicleNotRentedByCustomer = errors.New("vehicle is not rented by this customer")
	ErrCustomerHasActiveRental    = errors.New("customer already has an active rental")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token errors
var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
