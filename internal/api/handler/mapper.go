package handler

import (
	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateUserInput(req updateUserRequest) ports.UpdateUserInput {
	return ports.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
}

func toCreateAccommodationInput(req createAccommodationRequest, callerID, idempotencyKey string) ports.CreateAccommodationInput {
	host := req.Host
	if host == "" {
		host = callerID
	}
	in := ports.CreateAccommodationInput{
		Name:           req.Name,
		Description:    req.Description,
		City:           req.City,
		HostID:         host,
		CallerID:       callerID,
		IdempotencyKey: idempotencyKey,
	}
	if req.MaxGuests != nil {
		in.MaxGuests = *req.MaxGuests
	}
	return in
}

func toUpdateAccommodationInput(req updateAccommodationRequest) ports.UpdateAccommodationInput {
	return ports.UpdateAccommodationInput{
		Name:        req.Name,
		Description: req.Description,
		MaxGuests:   req.MaxGuests,
		City:        req.City,
		HostID:      req.Host,
	}
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: u.Role}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toAccommodationResponse(d ports.AccommodationDetail) accommodationResponse {
	a := d.Accommodation
	resp := accommodationResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		MaxGuests:   a.MaxGuests,
		City:        a.City,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if d.Host != nil {
		resp.Host = &hostResponse{ID: d.Host.ID, Email: d.Host.Email}
	}
	return resp
}

func toAccommodationResponses(items []ports.AccommodationDetail) []accommodationResponse {
	out := make([]accommodationResponse, 0, len(items))
	for _, d := range items {
		out = append(out, toAccommodationResponse(d))
	}
	return out
}

func toOwnedAccommodationResponses(items []*domain.Accommodation) []ownedAccommodationResponse {
	out := make([]ownedAccommodationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, ownedAccommodationResponse{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			MaxGuests:   a.MaxGuests,
			City:        a.City,
			Host:        a.HostID,
			CreatedAt:   a.CreatedAt,
			UpdatedAt:   a.UpdatedAt,
		})
	}
	return out
}
