package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hinode-pos/hinode-backend/internal/config"
	"github.com/hinode-pos/hinode-backend/internal/database"
	"github.com/hinode-pos/hinode-backend/internal/metrics"
	"github.com/hinode-pos/hinode-backend/internal/modules/auth"
	"github.com/hinode-pos/hinode-backend/internal/modules/food"
	"github.com/hinode-pos/hinode-backend/internal/modules/report"
	"github.com/hinode-pos/hinode-backend/internal/modules/shift"
	"github.com/hinode-pos/hinode-backend/internal/modules/slip"
	"github.com/hinode-pos/hinode-backend/internal/modules/user"
	"github.com/hinode-pos/hinode-backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.Database.URL)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Database ready")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo, cfg.Auth.JWTSecret)

	// ── Domain modules ──────────────────────────────────────
	slipRepo := slip.NewPostgresRepository(db)
	slipService := slip.NewService(slipRepo)

	foodRepo := food.NewPostgresRepository(db)
	foodService := food.NewService(foodRepo)

	shiftRepo := shift.NewPostgresRepository(db)
	shiftService := shift.NewService(shiftRepo)

	reportService := report.NewService(slipRepo, foodRepo, shiftRepo)

	router.Route("/api/v1", func(r chi.Router) {
		auth.NewHandler(authService, userService).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(cfg.Auth.JWTSecret))
			slip.NewHandler(slipService).RegisterRoutes(r)
			food.NewHandler(foodService).RegisterRoutes(r)
			shift.NewHandler(shiftService).RegisterRoutes(r)
			report.NewHandler(reportService).RegisterRoutes(r)
		})
	})

	addr := ":" + cfg.Server.Port
	slog.Info("API server starting", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
