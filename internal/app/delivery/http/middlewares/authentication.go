package middlewares

import (
	"context"
	"net/http"
	"strings"

	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/exceptions"
	"clinicport-service/internal/pkg/utils"
)

// Authenticate requires a valid bearer session token and stores the raw
// token in the request context for the usecases to resolve.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		if _, err := m.SessionService.ParseSessionData(r.Context(), token); err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
