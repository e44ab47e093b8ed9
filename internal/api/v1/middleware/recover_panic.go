package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// RecoverPanic turns a handler panic into a logged error and a call to
// errorHandler. http.ErrAbortHandler is re-raised so net/http can abort the
// connection quietly.
func RecoverPanic(logger *zap.Logger, errorHandler func(http.ResponseWriter, *http.Request, error), next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			w.Header().Set("Connection", "close")

			logger.Error("panic recovered",
				zap.Any("error", rec),
				zap.ByteString("stack", debug.Stack()),
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("request_id", w.Header().Get(RequestIDHeader)),
			)

			errorHandler(w, r, fmt.Errorf("%v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
