package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=handlers

// UserManager defines the user operations exposed over HTTP.
type UserManager interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Delete(ctx context.Context, rawID string) (*models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /users [get]
// @Security CookieAuth
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewSingleUserHandler returns an HTTP handler for the current user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.SingleUserResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse "User Not Found!"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /users/single [get]
// @Security CookieAuth
func NewSingleUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middlewares.GetPrincipalFromContext(r.Context())

		user, err := svc.Get(r.Context(), p.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeMessage(w, http.StatusNotFound, "User Not Found!")
				return
			}
			writeServerError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, models.SingleUserResponse{
			User:  user,
			Admin: p.IsAdmin(),
		})
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user by id.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 203 {object} models.DeletedUserResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /users/{id} [delete]
// @Router /users/delete/{id} [delete]
// @Security CookieAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServerError(w, r, err)
			return
		}

		writeJSON(w, http.StatusNonAuthoritativeInfo, models.DeletedUserResponse{
			DeletedUser: deleted,
			Message:     "User Deleted!",
		})
	}
}
