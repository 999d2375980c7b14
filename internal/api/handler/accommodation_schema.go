package handler

import (
	"time"

	"github.com/stayhub/lodging-api/internal/core/domain"
)

// errorResponse documents the error envelope written by the API error handler.
type errorResponse struct {
	Message string                  `json:"message"`
	Errors  []domain.FieldViolation `json:"errors,omitempty"`
}

// --- Request / Response types ---

type createAccommodationRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	MaxGuests   *int   `json:"maxGuests"   validate:"required"`
	City        string `json:"city"`
	// Host defaults to the caller when omitted.
	Host string `json:"host" validate:"omitempty,objectid"`
}

type updateAccommodationRequest struct {
	Name        *string `json:"name"        validate:"omitnil,min=1"`
	Description *string `json:"description"`
	MaxGuests   *int    `json:"maxGuests"`
	City        *string `json:"city"`
	Host        *string `json:"host"        validate:"omitnil,objectid"`
}

type hostResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// accommodationResponse is a listing with its owner populated. Host is null
// when the owner no longer exists.
type accommodationResponse struct {
	ID          string        `json:"_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	MaxGuests   int           `json:"maxGuests"`
	City        string        `json:"city"`
	Host        *hostResponse `json:"host"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// ownedAccommodationResponse is a listing whose host is the caller, so the
// owner is left as a bare id.
type ownedAccommodationResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	MaxGuests   int       `json:"maxGuests"`
	City        string    `json:"city"`
	Host        string    `json:"host"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
