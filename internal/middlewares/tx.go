package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-company-portal/internal/logger"
	"github.com/sbilibin2017/gw-company-portal/internal/models"
)

// TxMiddleware runs the handler inside a database transaction.
//
// The response is buffered until the outcome is known: a status >= 400 rolls
// the transaction back, anything else commits it, runs the hooks registered
// with AfterCommit and only then sends the response.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeTxError(w)
				return
			}

			state := &txState{tx: tx}
			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			ctx := context.WithValue(r.Context(), txKey, state)
			bw := &bufferedWriter{ResponseWriter: w}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode() >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeTxError(w)
				return
			}

			hookCtx := context.WithoutCancel(r.Context())
			for _, hook := range state.hooks {
				hook(hookCtx)
			}
			bw.flush()
		})
	}
}

func writeTxError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: "Internal server error"})
}

type txState struct {
	tx    *sqlx.Tx
	hooks []func(ctx context.Context)
}

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var txKey = contextKey{"tx"}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit schedules fn to run once the request transaction commits.
// Outside a transaction fn runs immediately. Hooks are dropped on rollback.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn(ctx)
		return
	}
	state.hooks = append(state.hooks, fn)
}

type bufferedWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (b *bufferedWriter) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.buf.Write(p)
}

func (b *bufferedWriter) statusCode() int {
	if b.status == 0 {
		return http.StatusOK
	}
	return b.status
}

func (b *bufferedWriter) flush() {
	b.ResponseWriter.WriteHeader(b.statusCode())
	if b.buf.Len() > 0 {
		b.ResponseWriter.Write(b.buf.Bytes())
	}
}
