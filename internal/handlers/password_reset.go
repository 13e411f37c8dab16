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

//go:generate mockgen -source=password_reset.go -destination=password_reset_mock.go -package=handlers

// PasswordResetter issues and redeems password reset keys.
type PasswordResetter interface {
	Issue(ctx context.Context, email string) error
	Reset(ctx context.Context, email, key, password string) error
}

// NewIssueKeyHandler returns an HTTP handler that starts a password reset.
// @Summary Request password reset
// @Tags keys
// @Accept json
// @Produce json
// @Param keyRequest body models.KeyRequest true "Account email"
// @Success 203 {object} models.MessageResponse "Check Email for Further Instructions!"
// @Failure 400 {object} models.MessageResponse "User Not Found!"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /keys [post]
func NewIssueKeyHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.KeyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "User Not Found!")
			return
		}

		if err := svc.Issue(r.Context(), req.Email); err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeMessage(w, http.StatusBadRequest, "User Not Found!")
				return
			}
			writeServerError(w, r, err)
			return
		}

		writeMessage(w, http.StatusNonAuthoritativeInfo, "Check Email for Further Instructions!")
	}
}

// NewResetPasswordHandler returns an HTTP handler that redeems a reset key.
// @Summary Reset password
// @Tags users
// @Accept json
// @Param resetPasswordRequest body models.ResetPasswordRequest true "Email, key and new password"
// @Success 204 "Password updated"
// @Failure 400 {object} models.MessageResponse "Empty fields or weak password"
// @Failure 401 {object} models.MessageResponse "Unauthorized!"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /users/resetPassword [put]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Empty Fields!")
			return
		}

		err := svc.Reset(r.Context(), req.Email, req.Key, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyFields):
				writeMessage(w, http.StatusBadRequest, "Empty Fields!")
			case errors.Is(err, validation.ErrInvalidPassword):
				writeMessage(w, http.StatusBadRequest, "Please Enter a Valid Password!")
			case errors.Is(err, services.ErrInvalidKey):
				writeMessage(w, http.StatusUnauthorized, "Unauthorized!")
			default:
				writeServerError(w, r, err)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
