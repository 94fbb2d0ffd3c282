package http

import (
	"time"

	"github.com/frontandrew/fleet/internal/domain"
)

// VehicleResponse - представление автомобиля в API
type VehicleResponse struct {
	ID                string  `json:"id"`
	LicensePlate      string  `json:"licensePlate"`
	ManufacturingDate string  `json:"manufacturingDate"`
	Model             string  `json:"model"`
	Brand             string  `json:"brand"`
	Status            string  `json:"status"`
	CurrentCustomerID *string `json:"currentCustomerId"`
	RentedAt          *string `json:"rentedAt"`
}

func toVehicleResponse(v *domain.Vehicle) *VehicleResponse {
	resp := &VehicleResponse{
		ID:                v.ID().String(),
		LicensePlate:      v.LicensePlate().Value(),
		ManufacturingDate: v.ManufacturingDate().String(),
		Model:             v.Model(),
		Brand:             v.Brand(),
		Status:            v.Status().String(),
	}

	if customerID := v.CurrentCustomerID(); customerID != "" {
		resp.CurrentCustomerID = &customerID
	}
	if rentedAt := v.RentedAt(); rentedAt != nil {
		formatted := rentedAt.UTC().Format(time.RFC3339)
		resp.RentedAt = &formatted
	}

	return resp
}

func toVehicleResponses(vehicles []*domain.Vehicle) []*VehicleResponse {
	responses := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		responses = append(responses, toVehicleResponse(v))
	}
	return responses
}
