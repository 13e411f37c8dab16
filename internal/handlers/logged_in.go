package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

//go:generate mockgen -source=logged_in.go -destination=logged_in_mock.go -package=handlers

// TokenInspector defines the token operations needed to report session state.
type TokenInspector interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
	Decode(ctx context.Context, tokenString string) (map[string]any, error)
}

// NewLoggedInHandler returns an HTTP handler reporting whether the caller holds
// a valid session token. It never fails.
// @Summary Session state
// @Description Returns bool=false on any failure, otherwise bool=true and the decoded token payload.
// @Tags users
// @Produce json
// @Success 200 {object} models.LoggedInResponse
// @Router /users/loggedIn [get]
func NewLoggedInHandler(tokens TokenInspector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		token, err := tokens.GetTokenFromRequest(ctx, r)
		if err != nil {
			writeJSON(w, http.StatusOK, models.LoggedInResponse{Bool: false})
			return
		}

		if err := tokens.Validate(ctx, token); err != nil {
			log.Infow("session token rejected", "err", err)
			writeJSON(w, http.StatusOK, models.LoggedInResponse{Bool: false})
			return
		}

		payload, err := tokens.Decode(ctx, token)
		if err != nil {
			log.Infow("session token decode failed", "err", err)
			writeJSON(w, http.StatusOK, models.LoggedInResponse{Bool: false})
			return
		}

		writeJSON(w, http.StatusOK, models.LoggedInResponse{Bool: true, Payload: payload})
	}
}
