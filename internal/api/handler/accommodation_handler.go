package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayhub/lodging-api/internal/api/metrics"
	"github.com/stayhub/lodging-api/internal/core/domain"
	"github.com/stayhub/lodging-api/internal/core/ports"
)

// AccommodationHandler handles HTTP requests for listing operations.
type AccommodationHandler struct {
	service ports.AccommodationService
}

func NewAccommodationHandler(service ports.AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{service: service}
}

func accommodationNotFound(err error, msg string) error {
	if errors.Is(err, domain.ErrAccommodationNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, msg).SetInternal(err)
	}
	return err
}

// Create handles POST /accommodations.
//
// @Summary      Create a listing
// @Tags         accommodations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                      false  "Replay key; a retry returns the original id"
// @Param        body             body      createAccommodationRequest  true   "Listing details"
// @Success      201              {object}  createdResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      403              {object}  errorResponse
// @Router       /accommodations [post]
func (h *AccommodationHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAccommodationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	idempotencyKey := c.Request().Header.Get(HeaderIdempotencyKey)
	created, err := h.service.Create(c.Request().Context(), toCreateAccommodationInput(req, userID, idempotencyKey))
	if err != nil {
		return err
	}

	metrics.AccommodationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{ID: created.ID})
}

// List handles GET /accommodations.
//
// @Summary      List all listings
// @Tags         accommodations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   accommodationResponse
// @Failure      401  {object}  errorResponse
// @Router       /accommodations [get]
func (h *AccommodationHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccommodationResponses(items))
}

// Get handles GET /accommodations/:id.
//
// @Summary      Get a listing by id
// @Tags         accommodations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Listing id"
// @Success      200  {object}  accommodationResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /accommodations/{id} [get]
func (h *AccommodationHandler) Get(c echo.Context) error {
	id := c.Param("id")

	detail, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return accommodationNotFound(err, fmt.Sprintf("No accommodation with id %s was found.", id))
	}
	return c.JSON(http.StatusOK, toAccommodationResponse(*detail))
}

// Update handles PUT /accommodations/:id. A successful update has no body.
//
// @Summary      Update a listing
// @Tags         accommodations
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                      true  "Listing id"
// @Param        body  body  updateAccommodationRequest  true  "Fields to change"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /accommodations/{id} [put]
func (h *AccommodationHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateAccommodationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.service.Update(c.Request().Context(), id, toUpdateAccommodationInput(req)); err != nil {
		return accommodationNotFound(err, fmt.Sprintf("Accommodation with id %s not found.", id))
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /accommodations/:id.
//
// @Summary      Delete a listing
// @Tags         accommodations
// @Security     BearerAuth
// @Param        id  path  string  true  "Listing id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /accommodations/{id} [delete]
func (h *AccommodationHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return accommodationNotFound(err, fmt.Sprintf("Accommodation with id %s not found.", id))
	}

	metrics.AccommodationsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
