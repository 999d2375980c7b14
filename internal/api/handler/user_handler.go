package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

// UserHandler serves account reads and updates for the caller and for
// arbitrary user ids.
type UserHandler struct {
	users          ports.UserService
	accommodations ports.AccommodationService
}

func NewUserHandler(users ports.UserService, accommodations ports.AccommodationService) *UserHandler {
	return &UserHandler{users: users, accommodations: accommodations}
}

func userNotFound(err error, id string) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("user with id %s is not found", id)).SetInternal(err)
	}
	return err
}

// Me handles GET /users/me.
//
// @Summary      Get the caller's account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), userID)
	if err != nil {
		return userNotFound(err, userID)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateMe handles PUT /users/me.
//
// @Summary      Update the caller's account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return h.update(c, userID)
}

// DeleteMe handles DELETE /users/me.
//
// @Summary      Delete the caller's account
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return h.delete(c, userID)
}

// List handles GET /users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Update handles PUT /users/:userId.
//
// @Summary      Update a user by id
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId  path      string             true  "User id"
// @Param        body    body      updateUserRequest  true  "Fields to change"
// @Success      200     {object}  userResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [put]
func (h *UserHandler) Update(c echo.Context) error {
	return h.update(c, c.Param("userId"))
}

// Delete handles DELETE /users/:userId.
//
// @Summary      Delete a user by id
// @Tags         users
// @Param        userId  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /users/{userId} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	return h.delete(c, c.Param("userId"))
}

// MyAccommodations handles GET /users/me/accommodations.
//
// @Summary      List the caller's listings
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ownedAccommodationResponse
// @Failure      401  {object}  errorResponse
// @Router       /users/me/accommodations [get]
func (h *UserHandler) MyAccommodations(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.accommodations.ListByHost(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOwnedAccommodationResponses(items))
}

func (h *UserHandler) update(c echo.Context, id string) error {
	var req updateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), id, toUpdateUserInput(req))
	if err != nil {
		return userNotFound(err, id)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) delete(c echo.Context, id string) error {
	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return userNotFound(err, id)
	}
	return c.NoContent(http.StatusNoContent)
}
