package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/mathpractice/internal/config"
	"github.com/msomdec/mathpractice/internal/domain"
	"github.com/msomdec/mathpractice/internal/genai"
	"github.com/msomdec/mathpractice/internal/handler"
	"github.com/msomdec/mathpractice/internal/identity"
	"github.com/msomdec/mathpractice/internal/repository/postgres"
	"github.com/msomdec/mathpractice/internal/repository/sqlite"
	"github.com/msomdec/mathpractice/internal/service"
)

// @title           Math Practice API
// @version         1.0
// @description     Practice-question generation, progress tracking, and dashboards for math students.

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Session token as "Bearer <token>".

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := openDatabase(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	if cfg.LLMAPIKey == "" {
		slog.Warn("LLM_API_KEY is not set; question generation requests may be rejected upstream")
	}

	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	google := identity.NewGoogleProvider(cfg.GoogleUserInfoURL, cfg.HTTPClientTimeout)
	llm := genai.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.HTTPClientTimeout)

	authService := service.NewAuthService(db.Users(), google, tokens, cfg.BcryptCost)
	progressService := service.NewProgressService(db.Progress())
	questionService := service.NewQuestionService(llm)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, progressService, questionService)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Chain(mux, cfg.CORSAllowedOrigin),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openDatabase picks Postgres for a postgres:// DSN and SQLite otherwise.
func openDatabase(ctx context.Context, cfg *config.Config) (domain.Database, error) {
	if cfg.UsePostgres() {
		slog.Info("using postgres database")
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	slog.Info("using sqlite database", "path", cfg.DatabaseURL)
	db, err := sqlite.New(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return db, nil
}
