package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/simbirgo/rental-api/internal/core/ports"
)

// AdminTransportHandler serves the admin-only transport endpoints, including
// the filtered listing that the public surface does not expose.
type AdminTransportHandler struct {
	transports ports.TransportService
}

func NewAdminTransportHandler(transports ports.TransportService) *AdminTransportHandler {
	return &AdminTransportHandler{transports: transports}
}

// List returns a page of transports, optionally filtered by type.
//
// @Summary      List transports
// @Tags         admin-transport
// @Produce      json
// @Security     BearerAuth
// @Param        start          query     int     false  "Rows to skip"
// @Param        count          query     int     false  "Rows to return"
// @Param        transportType  query     string  false  "Filter by transport type (case-insensitive)"
// @Success      200            {array}   domain.Transport
// @Failure      403            {object}  map[string]string
// @Router       /api/admin/transport [get]
func (h *AdminTransportHandler) List(c echo.Context) error {
	start, _ := strconv.Atoi(c.QueryParam("start"))
	count, _ := strconv.Atoi(c.QueryParam("count"))

	transports, err := h.transports.List(c.Request().Context(), ports.ListTransportsFilter{
		Skip:          start,
		Count:         count,
		TransportType: c.QueryParam("transportType"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transports)
}

// Get returns a transport by id.
//
// @Summary      Get transport by id (admin)
// @Tags         admin-transport
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Transport id"
// @Success      200  {object}  domain.Transport
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/transport/{id} [get]
func (h *AdminTransportHandler) Get(c echo.Context) error {
	t, err := h.transports.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// Create registers a new transport.
//
// @Summary      Create transport (admin)
// @Tags         admin-transport
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      transportRequest  true  "Transport details"
// @Success      201   {object}  domain.Transport
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/transport [post]
func (h *AdminTransportHandler) Create(c echo.Context) error {
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
// @Summary      Update transport by id (admin)
// @Tags         admin-transport
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Transport id"
// @Param        body  body      transportRequest  true  "Transport details"
// @Success      200   {object}  domain.Transport
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/transport/{id} [put]
func (h *AdminTransportHandler) Update(c echo.Context) error {
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
// @Summary      Delete transport by id (admin)
// @Tags         admin-transport
// @Security     BearerAuth
// @Param        id  path  string  true  "Transport id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/transport/{id} [delete]
func (h *AdminTransportHandler) Delete(c echo.Context) error {
	if err := h.transports.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
