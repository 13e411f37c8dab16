package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

func withPrincipal(req *http.Request, p models.Principal) *http.Request {
	return req.WithContext(middlewares.WithPrincipal(context.Background(), p))
}

func testCookies() *CookieHelper {
	return NewCookieHelper(false, "", http.SameSiteLaxMode)
}
