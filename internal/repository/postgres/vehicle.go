package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolationCode = "23505"

	licensePlateConstraint = "vehicles_license_plate_key"
	activeRenterConstraint = "vehicles_active_renter_idx"
)

const vehicleColumns = `id, license_plate, manufacturing_date, model, brand, status, customer_id, rented_at`

type vehicleRepository struct {
	db *pgxpool.Pool
}

// NewVehicleRepository создает repository автомобилей поверх PostgreSQL
func NewVehicleRepository(db *pgxpool.Pool) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, license_plate, manufacturing_date, model, brand, status, customer_id, rented_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	now := time.Now()

	_, err := r.db.Exec(ctx, query,
		vehicle.ID().String(),
		vehicle.LicensePlate().Value(),
		vehicle.ManufacturingDate().Value(),
		vehicle.Model(),
		vehicle.Brand(),
		int(vehicle.Status()),
		nullableCustomerID(vehicle),
		vehicle.RentedAt(),
		now,
		now,
	)

	if err != nil {
		if isUniqueViolation(err, licensePlateConstraint) {
			return domain.ErrVehicleAlreadyExists
		}
		return err
	}

	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *vehicleRepository) GetByLicensePlate(ctx context.Context, plate domain.LicensePlate) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE license_plate = $1`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, plate.Value()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *vehicleRepository) GetByCustomerID(ctx context.Context, customerID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE customer_id = $1 AND status = $2`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, customerID, int(domain.StatusRented)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoActiveRental
		}
		return nil, err
	}

	return vehicle, nil
}

func (r *vehicleRepository) GetAvailable(ctx context.Context) ([]*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1`

	rows, err := r.db.Query(ctx, query, int(domain.StatusAvailable))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVehicles(rows)
}

func (r *vehicleRepository) List(ctx context.Context, limit, offset int) ([]*domain.Vehicle, error) {
	query := `
		SELECT ` + vehicleColumns + `
		FROM vehicles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVehicles(rows)
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET status = $2, customer_id = $3, rented_at = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID().String(),
		int(vehicle.Status()),
		nullableCustomerID(vehicle),
		vehicle.RentedAt(),
		time.Now(),
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVehicleNotFound
	}

	return nil
}

// UpdateIfStatus - единственный арбитр гонки аренды: условие по прежнему
// состоянию гарантирует, что два конкурентных Rent не зафиксируются оба.
func (r *vehicleRepository) UpdateIfStatus(ctx context.Context, vehicle *domain.Vehicle, prev domain.VehicleStatus) error {
	query := `
		UPDATE vehicles
		SET status = $2, customer_id = $3, rented_at = $4, updated_at = $5
		WHERE id = $1 AND status = $6
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID().String(),
		int(vehicle.Status()),
		nullableCustomerID(vehicle),
		vehicle.RentedAt(),
		time.Now(),
		int(prev),
	)

	if err != nil {
		// Частичный уникальный индекс по customer_id добивает правило
		// "одна аренда на клиента" на уровне хранилища
		if isUniqueViolation(err, activeRenterConstraint) {
			return domain.ErrCustomerHasActiveRental
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVehicleNotAvailable
	}

	return nil
}

func (r *vehicleRepository) UpdateIfRentedBy(ctx context.Context, vehicle *domain.Vehicle, customerID string) error {
	query := `
		UPDATE vehicles
		SET status = $2, customer_id = $3, rented_at = $4, updated_at = $5
		WHERE id = $1 AND status = $6 AND customer_id = $7
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID().String(),
		int(vehicle.Status()),
		nullableCustomerID(vehicle),
		vehicle.RentedAt(),
		time.Now(),
		int(domain.StatusRented),
		customerID,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrVehicleNotRentedByCustomer
	}

	return nil
}

func (r *vehicleRepository) ExistsWithLicensePlate(ctx context.Context, plate domain.LicensePlate) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM vehicles WHERE license_plate = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, plate.Value()).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

// scanVehicle восстанавливает агрегат из строки таблицы vehicles
func scanVehicle(row pgx.Row) (*domain.Vehicle, error) {
	var (
		idValue           string
		plateValue        string
		manufacturingDate time.Time
		model             string
		brand             string
		statusValue       int
		customerID        *string
		rentedAt          *time.Time
	)

	err := row.Scan(&idValue, &plateValue, &manufacturingDate, &model, &brand, &statusValue, &customerID, &rentedAt)
	if err != nil {
		return nil, err
	}

	id, err := domain.ParseVehicleID(idValue)
	if err != nil {
		return nil, err
	}

	plate, err := domain.NewLicensePlate(plateValue)
	if err != nil {
		return nil, err
	}

	status, err := domain.VehicleStatusFromValue(statusValue)
	if err != nil {
		return nil, err
	}

	renter := ""
	if customerID != nil {
		renter = *customerID
	}

	// Дата производства не прогоняется через возрастное окно:
	// валидность зафиксирована при создании
	return domain.RehydrateVehicle(
		id,
		plate,
		domain.RehydrateManufacturingDate(manufacturingDate),
		model,
		brand,
		status,
		renter,
		rentedAt,
	), nil
}

func collectVehicles(rows pgx.Rows) ([]*domain.Vehicle, error) {
	var vehicles []*domain.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

func nullableCustomerID(vehicle *domain.Vehicle) *string {
	if vehicle.CurrentCustomerID() == "" {
		return nil
	}
	customerID := vehicle.CurrentCustomerID()
	return &customerID
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
}
