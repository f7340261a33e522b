package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario de la API (solo autenticación; la gestión de
// clientes es el dominio de negocio, los usuarios son operadores del sistema).
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"size:150;not null;uniqueIndex:idx_users_email"`
	PasswordHash string `gorm:"size:100;not null"` // bcrypt hash, nunca plano en dominio después de persistir
	Name         string `gorm:"size:100"`
	Role         string `gorm:"size:20;not null"` // admin, operador
	Status       string `gorm:"size:20;not null"` // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
