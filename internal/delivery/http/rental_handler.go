package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// RentalService определяет интерфейс для сервиса аренды
type RentalService interface {
	RentVehicle(ctx context.Context, vehicleID domain.VehicleID, customerID string) (*domain.Vehicle, error)
	ReturnVehicle(ctx context.Context, vehicleID domain.VehicleID, customerID string) (*domain.Vehicle, error)
	GetAvailableVehicles(ctx context.Context) ([]*domain.Vehicle, error)
	GetCustomerRentedVehicle(ctx context.Context, customerID string) (*domain.Vehicle, error)
}

// RentalHandler обрабатывает запросы операций аренды
type RentalHandler struct {
	rentalService RentalService
	logger        logger.Logger
}

// NewRentalHandler создает новый handler
func NewRentalHandler(rentalService RentalService, logger logger.Logger) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		logger:        logger,
	}
}

// RentRequest - запрос на аренду или возврат автомобиля
type RentRequest struct {
	VehicleID  string `json:"vehicleId"`
	CustomerID string `json:"customerId"`
}

// GetAvailableVehicles возвращает автомобили, доступные для аренды
// GET /api/vehicle/available
func (h *RentalHandler) GetAvailableVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.rentalService.GetAvailableVehicles(r.Context())
	if err != nil {
		h.logger.Error("Failed to get available vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get available vehicles")
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponses(vehicles))
}

// GetCustomerRental возвращает автомобиль, арендованный клиентом
// GET /api/vehicle/customer/{customerId}/rental
func (h *RentalHandler) GetCustomerRental(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "customerId")

	vehicle, err := h.rentalService.GetCustomerRentedVehicle(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCustomerID):
			respondError(w, http.StatusBadRequest, "Invalid customer ID")
		case errors.Is(err, domain.ErrNoActiveRental):
			respondError(w, http.StatusNotFound, "Customer has no active rental")
		default:
			h.logger.Error("Failed to get customer rental", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to get customer rental")
		}
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}

// RentVehicle передает автомобиль в аренду клиенту
// POST /api/vehicle/rent
func (h *RentalHandler) RentVehicle(w http.ResponseWriter, r *http.Request) {
	var req RentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicleID, err := domain.ParseVehicleID(req.VehicleID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.rentalService.RentVehicle(r.Context(), vehicleID, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCustomerID):
			respondError(w, http.StatusBadRequest, "Invalid customer ID")
		case errors.Is(err, domain.ErrVehicleNotFound):
			respondError(w, http.StatusNotFound, "Vehicle not found")
		case errors.Is(err, domain.ErrCustomerHasActiveRental):
			respondError(w, http.StatusConflict, "Customer already has an active rental")
		case errors.Is(err, domain.ErrVehicleNotAvailable):
			respondError(w, http.StatusConflict, "Vehicle is not available for rental")
		default:
			h.logger.Error("Failed to rent vehicle", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to rent vehicle")
		}
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}

// ReturnVehicle завершает аренду автомобиля
// POST /api/vehicle/return
func (h *RentalHandler) ReturnVehicle(w http.ResponseWriter, r *http.Request) {
	var req RentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicleID, err := domain.ParseVehicleID(req.VehicleID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.rentalService.ReturnVehicle(r.Context(), vehicleID, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCustomerID):
			respondError(w, http.StatusBadRequest, "Invalid customer ID")
		case errors.Is(err, domain.ErrVehicleNotFound):
			respondError(w, http.StatusNotFound, "Vehicle not found")
		case errors.Is(err, domain.ErrVehicleNotRentedByCustomer):
			respondError(w, http.StatusConflict, "Vehicle is not rented by this customer")
		case errors.Is(err, domain.ErrVehicleNotRented):
			respondError(w, http.StatusConflict, "Vehicle is not rented")
		default:
			h.logger.Error("Failed to return vehicle", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to return vehicle")
		}
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}
