package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simbirgo/rental-api/internal/core/ports"
)

// TransportHandler serves the public transport endpoints. Reading a single
// transport is anonymous; mutations require an authenticated caller.
type TransportHandler struct {
	transports ports.TransportService
}

func NewTransportHandler(transports ports.TransportService) *TransportHandler {
	return &TransportHandler{transports: transports}
}

type transportRequest struct {
	CanBeRented   bool     `json:"can_be_rented"`
	TransportType string   `json:"transport_type" validate:"required"`
	Model         *string  `json:"model"`
	Color         *string  `json:"color"`
	Identifier    *string  `json:"identifier"`
	Description   *string  `json:"description"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	MinutePrice   *float64 `json:"minute_price"`
	DayPrice      *float64 `json:"day_price"`
}

func (r *transportRequest) toInput() ports.TransportInput {
	return ports.TransportInput{
		CanBeRented:   r.CanBeRented,
		TransportType: r.TransportType,
		Model:         r.Model,
		Color:         r.Color,
		Identifier:    r.Identifier,
		Description:   r.Description,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		MinutePrice:   r.MinutePrice,
		DayPrice:      r.DayPrice,
	}
}

// Get returns a transport by id. No authentication required.
//
// @Summary      Get transport by id
// @Tags         transport
// @Produce      json
// @Param        id   path      string  true  "Transport id"
// @Success      200  {object}  domain.Transport
// @Failure      404  {object}  map[string]string
// @Router       /api/transport/{id} [get]
func (h *TransportHandler) Get(c echo.Context) error {
	t, err := h.transports.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Create registers a new transport owned by the authenticated caller.
//
// @Summary      Create transport
// @Tags         transport
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      transportRequest  true  "Transport details"
// @Success      201   {object}  domain.Transport
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/transport [post]
func (h *TransportHandler) Create(c echo.Context) error {
	var req transportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.transports.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update applies a partial update to a transport.
//
// @Summary      Update transport by id
// @Tags         transport
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Transport id"
// @Param        body  body      transportRequest  true  "Transport details"
// @Success      200   {object}  domain.Transport
// @Failure      404   {object}  map[string]string
// @Router       /api/transport/{id} [put]
func (h *TransportHandler) Update(c echo.Context) error {
	var req transportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.transports.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a transport.
//
// @Summary      Delete transport by id
// @Tags         transport
// @Security     BearerAuth
// @Param        id  path  string  true  "Transport id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/transport/{id} [delete]
func (h *TransportHandler) Delete(c echo.Context) error {
	if err := h.transports.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
