package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/adiwira/authgate/internal/pkg/stacktrace"
)

// middlewareRecoverer converts handler panics into a JSON 500 response.
// http.ErrAbortHandler is re-raised so the server can abort the connection
// the way net/http expects.
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}

			//nolint:err113,errorlint // sentinel comparison, see net/http docs
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			stack := debug.Stack()
			if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
				slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", paths)
			} else {
				slog.ErrorContext(r.Context(), "panic on the server", "because", rvr, "stack", string(stack))
			}

			if r.Header.Get("Connection") == "Upgrade" {
				return
			}

			writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
