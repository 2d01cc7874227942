package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/amivoice-web/internal/logger"
)

// withRecovery turns a panic in any later handler into the 500 JSON body.
// chi's middleware.Recoverer is not used because it writes an empty body.
//
// http.ErrAbortHandler is re-panicked so that net/http can abort the
// connection as intended.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("stack", string(debug.Stack())).
				Msg("handler panicked")

			h.writeError(w, r, fmt.Errorf("%w: %v", ErrPanicRecovered, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
