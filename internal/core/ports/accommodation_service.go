package ports

import (
	"context"

	"github.com/stayhub/lodging-api/internal/core/domain"
)

// CreateAccommodationInput carries all data needed to create a listing.
type CreateAccommodationInput struct {
	Name        string
	Description string
	MaxGuests   int
	City        string
	HostID      string
	// IdempotencyKey is scoped to CallerID.
	IdempotencyKey string
	CallerID       string
}

// UpdateAccommodationInput carries a partial listing update.
type UpdateAccommodationInput struct {
	Name        *string
	Description *string
	MaxGuests   *int
	City        *string
	HostID      *string
}

// HostSummary is the owner projection embedded in listing reads.
type HostSummary struct {
	ID    string
	Email string
}

// AccommodationDetail is a listing with its owner resolved. Host is nil when
// the owning user no longer exists.
type AccommodationDetail struct {
	Accommodation *domain.Accommodation
	Host          *HostSummary
}

// AccommodationService defines use-case operations for listings.
type AccommodationService interface {
	Create(ctx context.Context, input CreateAccommodationInput) (*domain.Accommodation, error)
	List(ctx context.Context) ([]AccommodationDetail, error)
	Get(ctx context.Context, id string) (*AccommodationDetail, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Accommodation, error)
	Update(ctx context.Context, id string, input UpdateAccommodationInput) (*domain.Accommodation, error)
	Delete(ctx context.Context, id string) error
}
