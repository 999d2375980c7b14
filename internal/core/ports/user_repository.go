package ports

import (
	"context"

	"github.com/stayhub/lodging-api/internal/core/domain"
)

// UserUpdate is a partial update. Nil fields are left untouched.
// PasswordHash must already be hashed.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
	Role         *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users that exist among ids; unknown or malformed
	// ids are skipped rather than reported.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
