package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"service-attendance/internal/app"
	"service-attendance/internal/logger"
)

func main() {
	_ = godotenv.Load()

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(config.Env, config.LogLevel)
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	application, err := app.New(app.Config{
		DataFile:             config.DataFile,
		AuditFile:            config.AuditFile,
		AdminUsername:        config.AdminUsername,
		AdminPassword:        config.AdminPassword,
		SessionSecret:        config.SessionSecret,
		SessionTTL:           config.SessionTTL,
		MaxRequestsPerSecond: config.MaxRequestsPerSecond,
	}, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to initialise application", zap.Error(err))
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              config.HTTPAddr,
		Handler:           application.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-shutdownCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			zapLogger.Error("http shutdown error", zap.Error(err))
		}
	}()

	zapLogger.Info("service-attendance listening", zap.String("addr", config.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zapLogger.Fatal("http server error", zap.Error(err))
	}
}

type config struct {
	HTTPAddr             string
	Env                  string
	LogLevel             string
	DataFile             string
	AuditFile            string
	AdminUsername        string
	AdminPassword        string
	SessionSecret        string
	SessionTTL           time.Duration
	MaxRequestsPerSecond int
}

func loadConfig() (config, error) {
	var cfg config
	var err error

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.DataFile = getEnv("DATA_FILE", "data/records.json")
	cfg.AuditFile = getEnv("AUDIT_FILE", "data/audit.log")
	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "sksgsian")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "yba6303")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "attendance-dev-secret")
	if cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", 12*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.MaxRequestsPerSecond, err = getEnvInt("MAX_REQUESTS_PER_SECOND", 50); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, &configError{message: "invalid int for " + key + ": " + err.Error()}
	}
	return parsed, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, &configError{message: "invalid duration for " + key + ": " + err.Error()}
	}
	return parsed, nil
}

type configError struct {
	message string
}

func (e *configError) Error() string {
	return e.message
}
