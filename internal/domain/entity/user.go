package entity

import "time"

// Roles válidos para User.
const (
	RoleStudent    = "student"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ValidRole indica si el rol es uno de los tres conocidos.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin || role == RoleSuperadmin
}

// User representa un usuario del laboratorio.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // student, admin, superadmin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
