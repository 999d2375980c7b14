package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

const accommodationScope = "accommodation"

// AccommodationService implements the listing catalog. Reads resolve the
// owning user's email with a secondary lookup on the user repository.
type AccommodationService struct {
	repo   ports.AccommodationRepository
	users  ports.UserRepository
	idem   ports.IdempotencyStore
	logger zerolog.Logger
}

func NewAccommodationService(
	repo ports.AccommodationRepository,
	users ports.UserRepository,
	idem ports.IdempotencyStore,
	logger zerolog.Logger,
) *AccommodationService {
	return &AccommodationService{repo: repo, users: users, idem: idem, logger: logger}
}

// Create inserts a new listing. If an idempotency key is provided and was
// already used by the same caller, the previously created listing is
// returned without side effects.
func (s *AccommodationService) Create(ctx context.Context, input ports.CreateAccommodationInput) (*domain.Accommodation, error) {
	scope := accommodationScope + ":" + input.CallerID
	if input.IdempotencyKey != "" && s.idem != nil {
		id, found, err := s.idem.Lookup(ctx, scope, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Msg("idempotency lookup failed, creating anyway")
		} else if found {
			if existing, err := s.repo.FindByID(ctx, id); err == nil {
				s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("accommodation_id", id).Msg("idempotent replay")
				return existing, nil
			}
		}
	}

	if err := checkAccommodationFields(&input.Name, &input.HostID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Accommodation{
		Name:        input.Name,
		Description: input.Description,
		MaxGuests:   input.MaxGuests,
		City:        input.City,
		HostID:      input.HostID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create accommodation")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, scope, input.IdempotencyKey, created.ID); err != nil {
			s.logger.Warn().Err(err).Str("accommodation_id", created.ID).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().Str("accommodation_id", created.ID).Str("host_id", created.HostID).Msg("accommodation created")
	return created, nil
}

// List returns every listing with its host resolved in one batched lookup.
func (s *AccommodationService) List(ctx context.Context) ([]ports.AccommodationDetail, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, a := range items {
		if _, ok := seen[a.HostID]; ok || a.HostID == "" {
			continue
		}
		seen[a.HostID] = struct{}{}
		ids = append(ids, a.HostID)
	}

	hosts := make(map[string]*ports.HostSummary, len(ids))
	if len(ids) > 0 {
		users, err := s.users.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("resolve hosts: %w", err)
		}
		for _, u := range users {
			hosts[u.ID] = &ports.HostSummary{ID: u.ID, Email: u.Email}
		}
	}

	out := make([]ports.AccommodationDetail, len(items))
	for i, a := range items {
		out[i] = ports.AccommodationDetail{Accommodation: a, Host: hosts[a.HostID]}
	}
	return out, nil
}

func (s *AccommodationService) Get(ctx context.Context, id string) (*ports.AccommodationDetail, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ports.AccommodationDetail{Accommodation: a}
	if a.HostID == "" {
		return detail, nil
	}

	host, err := s.users.FindByID(ctx, a.HostID)
	switch {
	case err == nil:
		detail.Host = &ports.HostSummary{ID: host.ID, Email: host.Email}
	case errors.Is(err, domain.ErrUserNotFound):
		// orphaned listing: host stays nil
	default:
		return nil, fmt.Errorf("resolve host: %w", err)
	}
	return detail, nil
}

func (s *AccommodationService) ListByHost(ctx context.Context, hostID string) ([]*domain.Accommodation, error) {
	return s.repo.ListByHost(ctx, hostID)
}

// Update re-checks stored-field constraints on the supplied fields only.
func (s *AccommodationService) Update(ctx context.Context, id string, input ports.UpdateAccommodationInput) (*domain.Accommodation, error) {
	if err := checkAccommodationFields(input.Name, input.HostID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, ports.AccommodationUpdate{
		Name:        input.Name,
		Description: input.Description,
		MaxGuests:   input.MaxGuests,
		City:        input.City,
		HostID:      input.HostID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("accommodation_id", id).Msg("accommodation updated")
	return updated, nil
}

func (s *AccommodationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("accommodation_id", id).Msg("accommodation deleted")
	return nil
}

func checkAccommodationFields(name, hostID *string) error {
	var violations []domain.FieldViolation
	if name != nil && *name == "" {
		violations = append(violations, domain.FieldViolation{Field: "name", Message: "name is required"})
	}
	if hostID != nil && *hostID == "" {
		violations = append(violations, domain.FieldViolation{Field: "host", Message: "host is required"})
	}
	if len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return nil
}
