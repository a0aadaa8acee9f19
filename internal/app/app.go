package app

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	transport "service-attendance/internal/http"
	"service-attendance/internal/http/handlers"
	"service-attendance/internal/http/middleware"
	"service-attendance/internal/repository"
	"service-attendance/internal/service"
)

type Config struct {
	DataFile             string
	AuditFile            string
	AdminUsername        string
	AdminPassword        string
	SessionSecret        string
	SessionTTL           time.Duration
	MaxRequestsPerSecond int
}

type App struct {
	handler http.Handler
}

func New(cfg Config, logger *zap.Logger) (*App, error) {
	seed, err := repository.SeedRecords()
	if err != nil {
		return nil, err
	}

	store, err := repository.OpenFileRecordStore(cfg.DataFile, seed)
	if err != nil {
		return nil, err
	}
	auditLog := repository.NewFileAuditLog(cfg.AuditFile)

	attendanceService := service.NewAttendanceService(store, auditLog, logger)
	authService := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, []byte(cfg.SessionSecret), cfg.SessionTTL)

	middlewares := middleware.New(authService, logger)
	handler := transport.NewRouter(
		logger,
		cfg.MaxRequestsPerSecond,
		middlewares,
		handlers.NewAuthHandler(authService, logger),
		handlers.NewRecordHandler(attendanceService, logger),
		handlers.NewDashboardHandler(attendanceService, logger),
		handlers.NewReportHandler(attendanceService, logger),
	)

	return &App{handler: handler}, nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}
