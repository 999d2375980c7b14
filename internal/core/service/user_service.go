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

const registerScope = "register"

// UserService implements registration, login and account management.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	idem   ports.IdempotencyStore
	log    zerolog.Logger
}

// NewUserService wires the user directory. idem may be nil, which disables
// Idempotency-Key handling.
func NewUserService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	idem ports.IdempotencyStore,
	log zerolog.Logger,
) *UserService {
	return &UserService{repo: repo, hasher: hasher, tokens: tokens, idem: idem, log: log}
}

// Register creates an account. created is false when an earlier request with
// the same Idempotency-Key and email is replayed.
func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (user *domain.User, created bool, err error) {
	if in.IdempotencyKey != "" {
		if existing := s.replay(ctx, in.Email, in.IdempotencyKey); existing != nil {
			return existing, false, nil
		}
	}

	role := in.Role
	if role == "" {
		role = domain.RoleGuest
	}
	if err := checkUserFields(&in.Email, &in.Password, &role); err != nil {
		return nil, false, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	user, err = s.repo.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, false, fmt.Errorf("register user: %w", err)
	}

	if in.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, registerIdemScope(in.Email), in.IdempotencyKey, user.ID); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to store idempotency key")
		}
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return user, true, nil
}

// registerIdemScope keys registration replays by the submitted email.
func registerIdemScope(email string) string {
	return registerScope + ":" + email
}

// replay returns the user a previous request with the same email and key
// created, or nil when the key is unknown or the store is unreachable.
func (s *UserService) replay(ctx context.Context, email, key string) *domain.User {
	if s.idem == nil {
		return nil
	}
	id, found, err := s.idem.Lookup(ctx, registerIdemScope(email), key)
	if err != nil {
		s.log.Warn().Err(err).Msg("idempotency lookup failed, registering anyway")
		return nil
	}
	if !found {
		return nil
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil || user.Email != email {
		return nil
	}
	s.log.Info().Str("user_id", id).Msg("idempotent replay")
	return user
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.TokenClaims{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. The stored hash is replaced only when the
// input carries a password, and that password is hashed exactly once.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if err := checkUserFields(in.Email, in.Password, in.Role); err != nil {
		return nil, err
	}

	upd := ports.UserUpdate{Email: in.Email, Role: in.Role}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		upd.PasswordHash = &hash
	}

	user, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Bool("password_changed", upd.PasswordHash != nil).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// checkUserFields enforces the stored-field constraints on every write. Nil
// pointers mean "not supplied" and are skipped.
func checkUserFields(email, password, role *string) error {
	var violations []domain.FieldViolation
	if email != nil && *email == "" {
		violations = append(violations, domain.FieldViolation{Field: "email", Message: "email is required"})
	}
	if password != nil && *password == "" {
		violations = append(violations, domain.FieldViolation{Field: "password", Message: "password is required"})
	}
	if role != nil && !domain.IsValidRole(*role) {
		violations = append(violations, domain.FieldViolation{
			Field:   "role",
			Message: fmt.Sprintf("role must be one of: %s %s", domain.RoleHost, domain.RoleGuest),
		})
	}
	if len(violations) > 0 {
		return &domain.ValidationError{Violations: violations}
	}
	return nil
}
