package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"service-attendance/internal/service"
)

const HeaderAuthorization = "Authorization"

type Middlewares struct {
	Auth   *service.AuthService
	Logger *zap.Logger
}

func New(auth *service.AuthService, logger *zap.Logger) *Middlewares {
	return &Middlewares{Auth: auth, Logger: logger}
}

// RequireSession gates admin routes on a valid bearer token from the login
// endpoint.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(HeaderAuthorization)
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			m.Logger.Debug("missing bearer token", zap.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}

		if err := m.Auth.VerifySession(token); err != nil {
			m.Logger.Debug("session rejected", zap.String("path", r.URL.Path))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}
