package repository

import (
	"context"

	"github.com/jhoicas/freezer-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail devuelve el usuario o nil si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByID devuelve el usuario o nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// ListByRole lista usuarios de un rol; role vacío lista todos.
	ListByRole(ctx context.Context, role string) ([]entity.User, error)
}
