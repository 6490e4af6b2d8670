package redirect

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Middleware answers requests whose path matches a rule with the rule's redirect
// and passes everything else to next untouched.
func Middleware(table *Table, logger zerolog.Logger) func(http.Handler) http.Handler {
	logger = logger.With().Str("component", "RedirectMiddleware").Logger()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// percent-encoded variants of a source are not the source
			decision := table.Resolve(r.URL.EscapedPath())
			if !decision.Matched {
				next.ServeHTTP(w, r)
				return
			}

			logger.Debug().
				Str("path", r.URL.EscapedPath()).
				Str("location", decision.Location).
				Int("status_code", decision.StatusCode).
				Msg("Legacy path redirected")

			w.Header().Set("Location", decision.Location)
			w.WriteHeader(decision.StatusCode)
		})
	}
}
