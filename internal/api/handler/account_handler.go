package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/simbirgo/rental-api/internal/api/metrics"
	"github.com/simbirgo/rental-api/internal/core/domain"
	"github.com/simbirgo/rental-api/internal/core/ports"
)

// AccountHandler handles the self-service account endpoints.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// SignIn verifies credentials and returns a bearer token.
//
// @Summary      Sign in
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/account/sign-in [post]
func (h *AccountHandler) SignIn(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	signed, err := h.accounts.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.SignInsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	metrics.SignInsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: signed})
}

// SignUp registers a new account with the default "user" role.
//
// @Summary      Sign up
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/account/sign-up [post]
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if _, err := h.accounts.SignUp(c.Request().Context(), req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return c.JSON(http.StatusConflict, map[string]string{"error": "username already taken"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "username and password are required"})
		}
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues("sign_up").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "registration successful"})
}

// SignOut acknowledges a sign-out. Tokens are stateless, so nothing is
// invalidated server-side; the token stays usable until it expires.
//
// @Summary      Sign out
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/account/sign-out [post]
func (h *AccountHandler) SignOut(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{Message: "sign out successful"})
}

type meResponse struct {
	Username string `json:"username"`
}

// Me returns the authenticated caller's account. The lookup goes to the
// store, so a token whose account was deleted afterwards yields 404.
//
// @Summary      Current account info
// @Tags         account
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/account/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}
	account, err := h.accounts.Me(c.Request().Context(), subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{Username: account.Username})
}

// Update replaces the caller's own username and password. The subject of the
// token must own the account; there is no admin bypass on this route. A
// rename collision surfaces as 404, matching the upstream contract.
//
// @Summary      Update own account
// @Tags         account
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      credentialsRequest  true  "New credentials"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/account/update [put]
func (h *AccountHandler) Update(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	_, err = h.accounts.SelfUpdate(c.Request().Context(), subject, ports.UpdateAccountInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "username is already in use"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "account updated successfully"})
}
