package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/frontandrew/fleet/internal/usecase/fleet"
	"github.com/go-chi/chi/v5"
)

// FleetService определяет интерфейс для сервиса управления парком
type FleetService interface {
	CreateVehicle(ctx context.Context, req *fleet.CreateVehicleRequest) (*domain.Vehicle, error)
	GetVehicleByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error)
	GetVehicleByLicensePlate(ctx context.Context, licensePlate string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, limit, offset int) ([]*domain.Vehicle, error)
	SetVehicleStatus(ctx context.Context, id domain.VehicleID, status domain.VehicleStatus) (*domain.Vehicle, error)
}

// FleetHandler обрабатывает запросы управления парком
type FleetHandler struct {
	fleetService FleetService
	logger       logger.Logger
}

// NewFleetHandler создает новый handler
func NewFleetHandler(fleetService FleetService, logger logger.Logger) *FleetHandler {
	return &FleetHandler{
		fleetService: fleetService,
		logger:       logger,
	}
}

// SetStatusRequest - запрос на административное переключение состояния
type SetStatusRequest struct {
	Status string `json:"status"`
}

// CreateVehicle добавляет автомобиль в парк
// POST /api/vehicle
func (h *FleetHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req fleet.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	vehicle, err := h.fleetService.CreateVehicle(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidLicensePlate):
			respondError(w, http.StatusBadRequest, "Invalid license plate")
		case errors.Is(err, domain.ErrInvalidManufacturingDate):
			respondError(w, http.StatusBadRequest, "Invalid manufacturing date")
		case errors.Is(err, domain.ErrInvalidVehicleData):
			respondError(w, http.StatusBadRequest, "Invalid vehicle data")
		case errors.Is(err, domain.ErrVehicleAlreadyExists):
			respondError(w, http.StatusConflict, "Vehicle with this license plate already exists")
		default:
			h.logger.Error("Failed to create vehicle", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to create vehicle")
		}
		return
	}

	respondJSON(w, http.StatusCreated, toVehicleResponse(vehicle))
}

// GetVehicleByID возвращает автомобиль по идентификатору
// GET /api/vehicle/{id}
func (h *FleetHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseVehicleID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.fleetService.GetVehicleByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondError(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		h.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get vehicle")
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}

// ListVehicles возвращает список автомобилей парка.
// Поддерживает фильтр по номеру: ?licensePlate=A123BC
// GET /api/vehicle
func (h *FleetHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	if plate := r.URL.Query().Get("licensePlate"); plate != "" {
		vehicle, err := h.fleetService.GetVehicleByLicensePlate(r.Context(), plate)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidLicensePlate):
				respondError(w, http.StatusBadRequest, "Invalid license plate")
			case errors.Is(err, domain.ErrVehicleNotFound):
				respondError(w, http.StatusNotFound, "Vehicle not found")
			default:
				h.logger.Error("Failed to get vehicle by license plate", map[string]interface{}{
					"error": err.Error(),
				})
				respondError(w, http.StatusInternalServerError, "Failed to get vehicle")
			}
			return
		}
		respondJSON(w, http.StatusOK, []*VehicleResponse{toVehicleResponse(vehicle)})
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	vehicles, err := h.fleetService.ListVehicles(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list vehicles")
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponses(vehicles))
}

// SetVehicleStatus - административное переключение состояния автомобиля
// PUT /api/vehicle/{id}/status
func (h *FleetHandler) SetVehicleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := domain.ParseVehicleID(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vehicle ID")
		return
	}

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := domain.ParseVehicleStatus(req.Status)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid vehicle status")
		return
	}

	vehicle, err := h.fleetService.SetVehicleStatus(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidVehicleStatus):
			respondError(w, http.StatusBadRequest, "Invalid vehicle status")
		case errors.Is(err, domain.ErrVehicleNotFound):
			respondError(w, http.StatusNotFound, "Vehicle not found")
		default:
			h.logger.Error("Failed to set vehicle status", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to set vehicle status")
		}
		return
	}

	respondJSON(w, http.StatusOK, toVehicleResponse(vehicle))
}
