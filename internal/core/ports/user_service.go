package ports

import (
	"context"

	"github.com/stayhub/lodging-api/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to UserService.Register.
type RegisterInput struct {
	Email    string
	Password string
	Role     string // empty = Guest
	// IdempotencyKey, when set, makes a replayed registration return the
	// originally created user instead of inserting a new one.
	IdempotencyKey string
}

// UpdateUserInput carries a partial user update with a plaintext password.
type UpdateUserInput struct {
	Email    *string
	Password *string
	Role     *string
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	// Register reports created=false when an Idempotency-Key replay returned
	// an existing account.
	Register(ctx context.Context, input RegisterInput) (user *domain.User, created bool, err error)
	// Login returns a signed access token. Unknown emails and wrong passwords
	// both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
