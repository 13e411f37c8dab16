package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

//go:generate mockgen -source=transaction.go -destination=transaction_mock.go -package=handlers

// TransactionManager defines the transaction operations exposed over HTTP.
type TransactionManager interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	Get(ctx context.Context, p models.Principal, rawID string) (*models.Transaction, error)
	Create(ctx context.Context, ownerID uuid.UUID, amount float64, desc string, isDebit *bool) (*models.Transaction, error)
	Delete(ctx context.Context, p models.Principal, rawID string) (*models.Transaction, error)
}

// NewListTransactionsHandler returns an HTTP handler listing the caller's transactions.
// @Summary List own transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} models.Transaction
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /transactions [get]
// @Security CookieAuth
func NewListTransactionsHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middlewares.GetPrincipalFromContext(r.Context())

		txs, err := svc.ListByOwner(r.Context(), p.UserID)
		if err != nil {
			writeServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, txs)
	}
}

// NewListAllTransactionsHandler returns an HTTP handler listing every transaction.
// @Summary List all transactions
// @Tags transactions
// @Produce json
// @Success 200 {array} models.Transaction
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /transactions/admin [get]
// @Security CookieAuth
func NewListAllTransactionsHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		txs, err := svc.ListAll(r.Context())
		if err != nil {
			writeServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, txs)
	}
}

// NewGetTransactionHandler returns an HTTP handler for a single transaction.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 401 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse "Transaction not Found!"
// @Failure 500 {object} models.ServerErrorResponse
// @Router /transactions/{id} [get]
// @Security CookieAuth
func NewGetTransactionHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middlewares.GetPrincipalFromContext(r.Context())

		tx, err := svc.Get(r.Context(), p, chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, services.ErrTransactionNotFound) {
				writeMessage(w, http.StatusNotFound, "Transaction not Found!")
				return
			}
			writeServerError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tx)
	}
}

// NewCreateTransactionHandler returns an HTTP handler creating a transaction
// owned by the caller.
// @Summary Create transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionRequest body models.TransactionRequest true "Transaction"
// @Success 203 {object} models.TransactionResponse
// @Failure 400 {object} models.MessageResponse "Please Fill All Fields!"
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /transactions [post]
// @Security CookieAuth
func NewCreateTransactionHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middlewares.GetPrincipalFromContext(r.Context())

		var req models.TransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Please Fill All Fields!")
			return
		}

		tx, err := svc.Create(r.Context(), p.UserID, req.Amount, req.Desc, req.IsDebit)
		if err != nil {
			if errors.Is(err, services.ErrInvalidTransaction) {
				writeMessage(w, http.StatusBadRequest, "Please Fill All Fields!")
				return
			}
			writeServerError(w, r, err)
			return
		}

		writeJSON(w, http.StatusNonAuthoritativeInfo, models.TransactionResponse{
			Result:  tx,
			Message: "Transaction Created!",
		})
	}
}

// NewDeleteTransactionHandler returns an HTTP handler deleting a transaction.
// Deleting a missing record succeeds with a null result.
// @Summary Delete transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 203 {object} models.TransactionResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.ServerErrorResponse
// @Router /transactions/{id} [delete]
// @Security CookieAuth
func NewDeleteTransactionHandler(svc TransactionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, _ := middlewares.GetPrincipalFromContext(r.Context())

		tx, err := svc.Delete(r.Context(), p, chi.URLParam(r, "id"))
		if err != nil {
			writeServerError(w, r, err)
			return
		}

		writeJSON(w, http.StatusNonAuthoritativeInfo, models.TransactionResponse{
			Result:  tx,
			Message: "Transaction Deleted!",
		})
	}
}
