package http

import (
	"net/http"

	"github.com/frontandrew/fleet/internal/delivery/http/middleware"
	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/config"
	"github.com/frontandrew/fleet/internal/pkg/jwt"
	"github.com/frontandrew/fleet/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler   *AuthHandler
	rentalHandler *RentalHandler
	fleetHandler  *FleetHandler
	tokenService  *jwt.TokenService
	config        *config.Config
	logger        logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	rentalHandler *RentalHandler,
	fleetHandler *FleetHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:   authHandler,
		rentalHandler: rentalHandler,
		fleetHandler:  fleetHandler,
		tokenService:  tokenService,
		config:        config,
		logger:        logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Post("/auth/login", rt.authHandler.Login)

		// Protected routes (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokenService))

			r.Get("/auth/me", rt.authHandler.GetMe)

			// Учетные записи создает только администратор
			r.With(middleware.RequireRole(domain.RoleAdmin)).
				Post("/auth/register", rt.authHandler.Register)

			r.Route("/vehicle", func(r chi.Router) {
				// Операции аренды
				r.Get("/available", rt.rentalHandler.GetAvailableVehicles)
				r.Get("/customer/{customerId}/rental", rt.rentalHandler.GetCustomerRental)
				r.Post("/rent", rt.rentalHandler.RentVehicle)
				r.Post("/return", rt.rentalHandler.ReturnVehicle)

				// Просмотр парка
				r.Get("/", rt.fleetHandler.ListVehicles)
				r.Get("/{id}", rt.fleetHandler.GetVehicleByID)

				// Admin only endpoints
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(domain.RoleAdmin))
					r.Post("/", rt.fleetHandler.CreateVehicle)
					r.Put("/{id}/status", rt.fleetHandler.SetVehicleStatus)
				})
			})
		})
	})

	return r
}
