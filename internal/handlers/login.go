package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
	Refresh(ctx context.Context, userID uuid.UUID) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by email and password and sets the session cookie.
// @Tags users
// @Accept json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 "Logged in, token cookie set"
// @Failure 400 {object} models.MessageResponse "Missing fields"
// @Failure 401 {object} models.MessageResponse "Wrong login information"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /users/login [post]
func NewLoginHandler(svc Loginer, cookies *CookieHelper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Please Fill in all Fields!")
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeMessage(w, http.StatusBadRequest, "Please Fill in all Fields!")
			case errors.Is(err, services.ErrInvalidCredentials):
				writeMessage(w, http.StatusUnauthorized, "Wrong Login Information!")
			default:
				writeServerError(w, r, err)
			}
			return
		}

		cookies.SetToken(w, token)
		w.WriteHeader(http.StatusOK)
	}
}

// NewRefreshHandler returns an HTTP handler that reissues the session token.
// @Summary Refresh session
// @Description Issues a fresh token with a new expiry for the current user.
// @Tags users
// @Success 200 "Token cookie reset"
// @Failure 401 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse "User Not Found!"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /users/refresh [post]
// @Security CookieAuth
func NewRefreshHandler(svc Loginer, cookies *CookieHelper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middlewares.GetPrincipalFromContext(r.Context())

		token, err := svc.Refresh(r.Context(), p.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeMessage(w, http.StatusNotFound, "User Not Found!")
				return
			}
			writeServerError(w, r, err)
			return
		}

		cookies.SetToken(w, token)
		w.WriteHeader(http.StatusOK)
	}
}

// NewLogoutHandler returns an HTTP handler that clears the session cookie.
// @Summary Logout
// @Tags users
// @Success 200 "Cookie cleared"
// @Router /users/logout [get]
func NewLogoutHandler(cookies *CookieHelper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookies.Clear(w)
		w.WriteHeader(http.StatusOK)
	}
}
