package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/lodging-api/internal/api/metrics"
	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

// HeaderIdempotencyKey makes a retried create return the original resource.
const HeaderIdempotencyKey = "Idempotency-Key"

type AuthHandler struct {
	users ports.UserService
}

func NewAuthHandler(users ports.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "Replay key; a retry returns the original id"
// @Param        body             body      registerRequest  true   "User registration details"
// @Success      201              {object}  createdResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, created, err := h.users.Register(c.Request().Context(), ports.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return err
	}

	if created {
		metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()
	}
	return c.JSON(http.StatusCreated, createdResponse{ID: user.ID})
}

// Login authenticates a user and returns an access token.
//
// @Summary      Login
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			return echo.NewHTTPError(http.StatusUnauthorized, "Credentials are not ok!")
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token})
}
