package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserRole представляет роль учетной записи в сервисе
type UserRole string

const (
	// RoleAdmin - управление парком и учетными записями
	RoleAdmin UserRole = "admin"
	// RoleOperator - операции аренды и просмотр парка
	RoleOperator UserRole = "operator"
)

// User - учетная запись оператора/администратора API.
// Клиенты аренды учетных записей не имеют: customer - это внешний
// непрозрачный идентификатор, а не сущность сервиса.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate проверяет корректность данных учетной записи
func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidUserData
	}
	if u.PasswordHash == "" {
		return ErrInvalidUserData
	}
	if u.Role != RoleAdmin && u.Role != RoleOperator {
		return ErrInvalidRole
	}
	return nil
}
