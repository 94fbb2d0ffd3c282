package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestRentalHandler_RentVehicle тестирует аренду автомобиля
func TestRentalHandler_RentVehicle(t *testing.T) {
	vehicleID := domain.GenerateVehicleID()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockRentalService)
		expectedStatus int
		checkResponse  func(*testing.T, map[string]interface{})
	}{
		{
			name: "успешная аренда",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-1",
			},
			mockSetup: func(m *MockRentalService) {
				rented := CreateRentedTestVehicle(t, "A123BC", "customer-1")
				m.On("RentVehicle", mock.Anything, vehicleID, "customer-1").Return(rented, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "Rented", resp["status"])
				assert.Equal(t, "customer-1", resp["currentCustomerId"])
				assert.NotEmpty(t, resp["rentedAt"])
			},
		},
		{
			name:           "невалидный JSON",
			requestBody:    "invalid",
			mockSetup:      func(m *MockRentalService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name: "невалидный идентификатор автомобиля",
			requestBody: RentRequest{
				VehicleID:  "not-a-uuid",
				CustomerID: "customer-1",
			},
			mockSetup:      func(m *MockRentalService) {},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name: "пустой идентификатор клиента",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "  ",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("RentVehicle", mock.Anything, vehicleID, "  ").
					Return(nil, domain.ErrInvalidCustomerID)
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name: "автомобиль не найден",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-1",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("RentVehicle", mock.Anything, vehicleID, "customer-1").
					Return(nil, domain.ErrVehicleNotFound)
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name: "у клиента уже есть аренда",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-1",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("RentVehicle", mock.Anything, vehicleID, "customer-1").
					Return(nil, domain.ErrCustomerHasActiveRental)
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
		{
			name: "автомобиль недоступен",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-1",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("RentVehicle", mock.Anything, vehicleID, "customer-1").
					Return(nil, domain.ErrVehicleNotAvailable)
			},
			expectedStatus: http.StatusConflict,
			checkResponse: func(t *testing.T, resp map[string]interface{}) {
				assert.NotEmpty(t, resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			tt.mockSetup(mockService)

			handler := NewRentalHandler(mockService, logger.NewNoop())

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/vehicle/rent", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.RentVehicle(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			_ = json.Unmarshal(w.Body.Bytes(), &response)
			tt.checkResponse(t, response)

			mockService.AssertExpectations(t)
		})
	}
}

// TestRentalHandler_ReturnVehicle тестирует возврат автомобиля
func TestRentalHandler_ReturnVehicle(t *testing.T) {
	vehicleID := domain.GenerateVehicleID()

	tests := []struct {
		name           string
		requestBody    interface{}
		mockSetup      func(*MockRentalService)
		expectedStatus int
	}{
		{
			name: "успешный возврат",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-1",
			},
			mockSetup: func(m *MockRentalService) {
				returned := CreateTestVehicle(t, "A123BC")
				m.On("ReturnVehicle", mock.Anything, vehicleID, "customer-1").Return(returned, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "возврат чужим клиентом",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-2",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("ReturnVehicle", mock.Anything, vehicleID, "customer-2").
					Return(nil, domain.ErrVehicleNotRentedByCustomer)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "автомобиль не в аренде",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-1",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("ReturnVehicle", mock.Anything, vehicleID, "customer-1").
					Return(nil, domain.ErrVehicleNotRented)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "автомобиль не найден",
			requestBody: RentRequest{
				VehicleID:  vehicleID.String(),
				CustomerID: "customer-1",
			},
			mockSetup: func(m *MockRentalService) {
				m.On("ReturnVehicle", mock.Anything, vehicleID, "customer-1").
					Return(nil, domain.ErrVehicleNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "невалидный JSON",
			requestBody:    "{",
			mockSetup:      func(m *MockRentalService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			tt.mockSetup(mockService)

			handler := NewRentalHandler(mockService, logger.NewNoop())

			var body []byte
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/vehicle/return", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.ReturnVehicle(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

// TestRentalHandler_GetAvailableVehicles тестирует список доступных автомобилей
func TestRentalHandler_GetAvailableVehicles(t *testing.T) {
	t.Run("успешное получение", func(t *testing.T) {
		mockService := new(MockRentalService)
		vehicles := []*domain.Vehicle{
			CreateTestVehicle(t, "A123BC"),
			CreateTestVehicle(t, "B456DE"),
		}
		mockService.On("GetAvailableVehicles", mock.Anything).Return(vehicles, nil)

		handler := NewRentalHandler(mockService, logger.NewNoop())

		req := httptest.NewRequest(http.MethodGet, "/api/vehicle/available", nil)
		w := httptest.NewRecorder()

		handler.GetAvailableVehicles(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []map[string]interface{}
		_ = json.Unmarshal(w.Body.Bytes(), &response)
		assert.Len(t, response, 2)
		assert.Equal(t, "Available", response[0]["status"])
	})

	t.Run("нет доступных автомобилей", func(t *testing.T) {
		mockService := new(MockRentalService)
		mockService.On("GetAvailableVehicles", mock.Anything).Return([]*domain.Vehicle{}, nil)

		handler := NewRentalHandler(mockService, logger.NewNoop())

		req := httptest.NewRequest(http.MethodGet, "/api/vehicle/available", nil)
		w := httptest.NewRecorder()

		handler.GetAvailableVehicles(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

// TestRentalHandler_GetCustomerRental тестирует получение аренды клиента
func TestRentalHandler_GetCustomerRental(t *testing.T) {
	tests := []struct {
		name           string
		customerID     string
		mockSetup      func(*MockRentalService)
		expectedStatus int
	}{
		{
			name:       "аренда найдена",
			customerID: "customer-1",
			mockSetup: func(m *MockRentalService) {
				rented := CreateRentedTestVehicle(t, "A123BC", "customer-1")
				m.On("GetCustomerRentedVehicle", mock.Anything, "customer-1").Return(rented, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "активной аренды нет",
			customerID: "customer-1",
			mockSetup: func(m *MockRentalService) {
				m.On("GetCustomerRentedVehicle", mock.Anything, "customer-1").
					Return(nil, domain.ErrNoActiveRental)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockRentalService)
			tt.mockSetup(mockService)

			handler := NewRentalHandler(mockService, logger.NewNoop())

			req := httptest.NewRequest(http.MethodGet, "/api/vehicle/customer/"+tt.customerID+"/rental", nil)

			// Настраиваем chi router для передачи параметра customerId
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("customerId", tt.customerID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.GetCustomerRental(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}
