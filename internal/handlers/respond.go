package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// writeServerError logs err and returns it raw in a 500 body.
func writeServerError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
	writeJSON(w, http.StatusInternalServerError, models.ServerErrorResponse{
		Msg: "Server Error",
		Err: err.Error(),
	})
}
