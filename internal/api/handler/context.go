package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSubject extracts the username injected by the Auth middleware. An empty
// subject means the middleware did not run or the token carried no subject;
// either way the request is unauthenticated.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get("username").(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}
