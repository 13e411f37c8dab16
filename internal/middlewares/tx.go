package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction is committed when the handler writes a status below 400 and
// rolled back otherwise. A failed commit turns the response into a 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromContext(r.Context())

			tx, err := db.Beginx()
			if err != nil {
				log.Errorw("failed to begin transaction", "error", err)
				writeJSON(w, http.StatusInternalServerError, models.ServerErrorResponse{Msg: "Server Error", Err: err.Error()})
				return
			}

			tw := &txResponseWriter{ResponseWriter: w, tx: tx, log: log.Errorw}

			defer func() {
				if rec := recover(); rec != nil {
					if !tw.done {
						tx.Rollback()
					}
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx)
			r = r.WithContext(ctx)

			next.ServeHTTP(tw, r)

			if !tw.done {
				tw.WriteHeader(http.StatusOK)
			}
		})
	}
}

// txResponseWriter finishes the transaction right before the status line is sent.
type txResponseWriter struct {
	http.ResponseWriter
	tx     *sqlx.Tx
	log    func(msg string, keysAndValues ...any)
	done   bool
	failed bool
}

func (w *txResponseWriter) WriteHeader(code int) {
	if w.done {
		return
	}
	w.done = true

	if code >= http.StatusBadRequest {
		if err := w.tx.Rollback(); err != nil {
			w.log("failed to rollback transaction", "error", err)
		}
		w.ResponseWriter.WriteHeader(code)
		return
	}

	if err := w.tx.Commit(); err != nil {
		w.log("failed to commit transaction", "error", err)
		w.failed = true
		w.Header().Del("Set-Cookie")
		writeJSON(w.ResponseWriter, http.StatusInternalServerError, models.ServerErrorResponse{Msg: "Server Error", Err: err.Error()})
		return
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *txResponseWriter) Write(b []byte) (int, error) {
	if !w.done {
		w.WriteHeader(http.StatusOK)
	}
	if w.failed {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
