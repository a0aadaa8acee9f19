package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"service-attendance/internal/http/handlers"
	"service-attendance/internal/http/middleware"
)

// NewRouter wires the API surface. The form submission and login are open;
// everything the admin dashboard consumes sits behind the session gate.
func NewRouter(
	logger *zap.Logger,
	maxRequestsPerSecond int,
	middlewares *middleware.Middlewares,
	authHandler *handlers.AuthHandler,
	recordHandler *handlers.RecordHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(httprate.LimitByIP(maxRequestsPerSecond, time.Second))
	router.Use(requestLogger(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/records", recordHandler.Create)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSession)
			r.Get("/records", recordHandler.ListByDate)
			r.Delete("/records/{record_id}", recordHandler.Delete)
			r.Delete("/records", recordHandler.Reset)
			r.Get("/dashboard", dashboardHandler.Day)
			r.Get("/reports/relief.pdf", reportHandler.PDF)
			r.Get("/reports/relief.xlsx", reportHandler.Workbook)
			r.Get("/audit", recordHandler.AuditTrail)
		})
	})

	return router
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(wrapped, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
