package cached

import (
	"context"
	"encoding/json"
	"time"

	"github.com/frontandrew/fleet/internal/domain"
	"github.com/frontandrew/fleet/internal/pkg/redis"
	"github.com/frontandrew/fleet/internal/repository"
)

const (
	availableCacheKey = "vehicles:available"
	renterCachePrefix = "vehicles:renter:"

	availableCacheTTL = 30 * time.Second
	renterCacheTTL    = time.Minute
)

// Cache - операции кэша, нужные декоратору. Реализуется redis.Client.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

var _ Cache = (*redis.Client)(nil)

// VehicleRepository добавляет кэширование горячих чтений к vehicle repository.
// Кэшируются список доступных автомобилей и поиск активной аренды клиента;
// любая запись инвалидирует затронутые ключи. TTL короткие: просроченная
// запись переживает максимум 30-60 секунд.
type VehicleRepository struct {
	repo  repository.VehicleRepository
	cache Cache
}

// NewVehicleRepository создает кэширующий декоратор над vehicle repository
func NewVehicleRepository(repo repository.VehicleRepository, cache Cache) *VehicleRepository {
	return &VehicleRepository{
		repo:  repo,
		cache: cache,
	}
}

// vehicleDocument - сериализуемое представление агрегата для кэша
type vehicleDocument struct {
	ID                string     `json:"id"`
	LicensePlate      string     `json:"license_plate"`
	ManufacturingDate time.Time  `json:"manufacturing_date"`
	Model             string     `json:"model"`
	Brand             string     `json:"brand"`
	Status            int        `json:"status"`
	CustomerID        string     `json:"customer_id,omitempty"`
	RentedAt          *time.Time `json:"rented_at,omitempty"`
}

func toDocument(vehicle *domain.Vehicle) vehicleDocument {
	return vehicleDocument{
		ID:                vehicle.ID().String(),
		LicensePlate:      vehicle.LicensePlate().Value(),
		ManufacturingDate: vehicle.ManufacturingDate().Value(),
		Model:             vehicle.Model(),
		Brand:             vehicle.Brand(),
		Status:            int(vehicle.Status()),
		CustomerID:        vehicle.CurrentCustomerID(),
		RentedAt:          vehicle.RentedAt(),
	}
}

func (d vehicleDocument) toDomain() (*domain.Vehicle, error) {
	id, err := domain.ParseVehicleID(d.ID)
	if err != nil {
		return nil, err
	}

	plate, err := domain.NewLicensePlate(d.LicensePlate)
	if err != nil {
		return nil, err
	}

	status, err := domain.VehicleStatusFromValue(d.Status)
	if err != nil {
		return nil, err
	}

	return domain.RehydrateVehicle(
		id,
		plate,
		domain.RehydrateManufacturingDate(d.ManufacturingDate),
		d.Model,
		d.Brand,
		status,
		d.CustomerID,
		d.RentedAt,
	), nil
}

// GetAvailable возвращает доступные автомобили, отдавая кэш при попадании
func (r *VehicleRepository) GetAvailable(ctx context.Context) ([]*domain.Vehicle, error) {
	cachedValue, err := r.cache.Get(ctx, availableCacheKey)
	if err == nil {
		var documents []vehicleDocument
		if err := json.Unmarshal([]byte(cachedValue), &documents); err == nil {
			vehicles := make([]*domain.Vehicle, 0, len(documents))
			for _, doc := range documents {
				vehicle, err := doc.toDomain()
				if err != nil {
					// Поврежденная запись кэша - идем в БД
					vehicles = nil
					break
				}
				vehicles = append(vehicles, vehicle)
			}
			if vehicles != nil {
				return vehicles, nil
			}
		}
	}

	vehicles, err := r.repo.GetAvailable(ctx)
	if err != nil {
		return nil, err
	}

	documents := make([]vehicleDocument, 0, len(vehicles))
	for _, vehicle := range vehicles {
		documents = append(documents, toDocument(vehicle))
	}

	if payload, err := json.Marshal(documents); err == nil {
		// Ошибка записи в кэш не критична
		_ = r.cache.Set(ctx, availableCacheKey, payload, availableCacheTTL)
	}

	return vehicles, nil
}

// GetByCustomerID возвращает активную аренду клиента, кэшируя только попадания
func (r *VehicleRepository) GetByCustomerID(ctx context.Context, customerID string) (*domain.Vehicle, error) {
	cacheKey := renterCachePrefix + customerID

	cachedValue, err := r.cache.Get(ctx, cacheKey)
	if err == nil {
		var doc vehicleDocument
		if err := json.Unmarshal([]byte(cachedValue), &doc); err == nil {
			if vehicle, err := doc.toDomain(); err == nil {
				return vehicle, nil
			}
		}
	}

	vehicle, err := r.repo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(toDocument(vehicle)); err == nil {
		_ = r.cache.Set(ctx, cacheKey, payload, renterCacheTTL)
	}

	return vehicle, nil
}

// Create добавляет автомобиль и инвалидирует список доступных
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	if err := r.repo.Create(ctx, vehicle); err != nil {
		return err
	}

	r.invalidate(ctx, vehicle)
	return nil
}

// Update сохраняет автомобиль безусловно и инвалидирует кэш.
// Прежний арендатор читается до записи: административный SetStatus уже
// очистил поля аренды в агрегате, и без этого чтения ключ
// vehicles:renter:<id> пережил бы снятие автомобиля с аренды.
func (r *VehicleRepository) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	stored, storedErr := r.repo.GetByID(ctx, vehicle.ID())

	if err := r.repo.Update(ctx, vehicle); err != nil {
		return err
	}

	if storedErr == nil && stored.CurrentCustomerID() != "" {
		_ = r.cache.Del(ctx, renterCachePrefix+stored.CurrentCustomerID())
	}
	r.invalidate(ctx, vehicle)
	return nil
}

// UpdateIfStatus сохраняет автомобиль условно и инвалидирует кэш
func (r *VehicleRepository) UpdateIfStatus(ctx context.Context, vehicle *domain.Vehicle, prev domain.VehicleStatus) error {
	if err := r.repo.UpdateIfStatus(ctx, vehicle, prev); err != nil {
		return err
	}

	r.invalidate(ctx, vehicle)
	return nil
}

// UpdateIfRentedBy сохраняет автомобиль условно и инвалидирует кэш,
// включая запись аренды указанного клиента
func (r *VehicleRepository) UpdateIfRentedBy(ctx context.Context, vehicle *domain.Vehicle, customerID string) error {
	if err := r.repo.UpdateIfRentedBy(ctx, vehicle, customerID); err != nil {
		return err
	}

	_ = r.cache.Del(ctx, renterCachePrefix+customerID)
	r.invalidate(ctx, vehicle)
	return nil
}

// GetByID не кэшируется - точечные чтения редки и дешевы
func (r *VehicleRepository) GetByID(ctx context.Context, id domain.VehicleID) (*domain.Vehicle, error) {
	return r.repo.GetByID(ctx, id)
}

// GetByLicensePlate не кэшируется
func (r *VehicleRepository) GetByLicensePlate(ctx context.Context, plate domain.LicensePlate) (*domain.Vehicle, error) {
	return r.repo.GetByLicensePlate(ctx, plate)
}

// List не кэшируется - используется только админкой
func (r *VehicleRepository) List(ctx context.Context, limit, offset int) ([]*domain.Vehicle, error) {
	return r.repo.List(ctx, limit, offset)
}

// ExistsWithLicensePlate не кэшируется
func (r *VehicleRepository) ExistsWithLicensePlate(ctx context.Context, plate domain.LicensePlate) (bool, error) {
	return r.repo.ExistsWithLicensePlate(ctx, plate)
}

func (r *VehicleRepository) invalidate(ctx context.Context, vehicle *domain.Vehicle) {
	keys := []string{availableCacheKey}
	if vehicle.CurrentCustomerID() != "" {
		keys = append(keys, renterCachePrefix+vehicle.CurrentCustomerID())
	}

	// Ошибка инвалидации не критична: TTL добьет устаревшие записи
	_ = r.cache.Del(ctx, keys...)
}
