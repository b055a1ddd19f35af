package middlewares

import (
	"net/http"

	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/exceptions"
	"clinicport-service/internal/pkg/utils"
)

// RequireAPIKey protects the schedule management endpoints, which are used
// by the front office admin tooling rather than patients.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey == "" || apiKey != m.InternalConfig.App.SuperadminAPIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyInvalid(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
