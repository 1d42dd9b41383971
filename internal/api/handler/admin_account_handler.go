package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/simbirgo/rental-api/internal/api/metrics"
	"github.com/simbirgo/rental-api/internal/core/ports"
)

// AdminAccountHandler handles the admin-only account CRUD endpoints.
// Role checks happen in the router middleware chain, not here.
type AdminAccountHandler struct {
	accounts ports.AccountService
}

func NewAdminAccountHandler(accounts ports.AccountService) *AdminAccountHandler {
	return &AdminAccountHandler{accounts: accounts}
}

// adminAccountRequest is the admin create/update payload. IsAdmin is accepted
// for wire compatibility but has no effect; see DESIGN.md.
type adminAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

// List returns a page of accounts with their resolved roles.
//
// @Summary      List accounts
// @Tags         admin-account
// @Produce      json
// @Security     BearerAuth
// @Param        start  query     int  false  "Rows to skip"
// @Param        count  query     int  false  "Rows to return"
// @Success      200    {array}   ports.AccountWithRoles
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /api/admin/account [get]
func (h *AdminAccountHandler) List(c echo.Context) error {
	start, _ := strconv.Atoi(c.QueryParam("start"))
	count, _ := strconv.Atoi(c.QueryParam("count"))

	accounts, err := h.accounts.List(c.Request().Context(), start, count)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Get returns a single account with its resolved roles.
//
// @Summary      Get account by id
// @Tags         admin-account
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  ports.AccountWithRoles
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/account/{id} [get]
func (h *AdminAccountHandler) Get(c echo.Context) error {
	account, err := h.accounts.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Create provisions a new account.
//
// @Summary      Create account
// @Tags         admin-account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adminAccountRequest  true  "Account details"
// @Success      201   {object}  domain.Account
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/account [post]
func (h *AdminAccountHandler) Create(c echo.Context) error {
	var req adminAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.accounts.Create(c.Request().Context(), ports.UpdateAccountInput{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues("admin").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update replaces an account's username and password.
//
// @Summary      Update account by id
// @Tags         admin-account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Account id"
// @Param        body  body      adminAccountRequest  true  "New account details"
// @Success      200   {object}  domain.Account
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/admin/account/{id} [put]
func (h *AdminAccountHandler) Update(c echo.Context) error {
	var req adminAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.accounts.UpdateByID(c.Request().Context(), c.Param("id"), ports.UpdateAccountInput{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an account. Deleting an unknown id yields 404.
//
// @Summary      Delete account by id
// @Tags         admin-account
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/account/{id} [delete]
func (h *AdminAccountHandler) Delete(c echo.Context) error {
	if err := h.accounts.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
