package ports

import (
	"context"

	"github.com/stayhub/lodging-api/internal/core/domain"
)

// AccommodationUpdate is a partial update. Nil fields are left untouched.
type AccommodationUpdate struct {
	Name        *string
	Description *string
	MaxGuests   *int
	City        *string
	HostID      *string
}

// AccommodationRepository defines persistence operations for listings.
type AccommodationRepository interface {
	Create(ctx context.Context, a *domain.Accommodation) (*domain.Accommodation, error)
	FindByID(ctx context.Context, id string) (*domain.Accommodation, error)
	List(ctx context.Context) ([]*domain.Accommodation, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Accommodation, error)
	Update(ctx context.Context, id string, upd AccommodationUpdate) (*domain.Accommodation, error)
	Delete(ctx context.Context, id string) error
}
