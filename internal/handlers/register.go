package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/validation"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (string, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Validates the credentials, creates the account and sets the session cookie.
// @Tags users
// @Accept json
// @Param registerRequest body models.RegisterRequest true "User registration request"
// @Success 200 "Registered, token cookie set"
// @Failure 400 {object} models.MessageResponse "Missing or invalid fields, or email in use"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer, cookies *CookieHelper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Please Fill in All Fields!")
			return
		}

		token, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				writeMessage(w, http.StatusBadRequest, "Please Fill in All Fields!")
			case errors.Is(err, validation.ErrInvalidUsername):
				writeMessage(w, http.StatusBadRequest, "Please Enter a Valid Username!")
			case errors.Is(err, validation.ErrInvalidEmail):
				writeMessage(w, http.StatusBadRequest, "Please Enter a Valid Email!")
			case errors.Is(err, validation.ErrInvalidPassword):
				writeMessage(w, http.StatusBadRequest, "Please Enter a Valid Password!")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeMessage(w, http.StatusBadRequest, "Email Already in Use!")
			default:
				writeServerError(w, r, err)
			}
			return
		}

		cookies.SetToken(w, token)
		w.WriteHeader(http.StatusOK)
	}
}
