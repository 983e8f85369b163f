//	@title			ImageDrop API
//	@version		1.0
//	@description	Single-admin image upload service: S3-compatible storage with upload history.
//
//	@host		localhost:8080
//	@BasePath	/api
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						auth_token

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/imagedrop/service/internal/auth"
	"github.com/imagedrop/service/internal/config"
	"github.com/imagedrop/service/internal/db"
	appMiddleware "github.com/imagedrop/service/internal/middleware"
	"github.com/imagedrop/service/internal/storage"
	"github.com/imagedrop/service/internal/upload"

	_ "github.com/imagedrop/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	store, err := storage.NewMinioStore(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageRegion,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	authSvc := auth.NewService(cfg)
	authHandler := auth.NewHandler(authSvc, cfg)

	uploadRepo := upload.NewPostgresRepository(pool)
	uploadSvc := upload.NewService(store, uploadRepo, cfg)
	uploadHandler := upload.NewHandler(uploadSvc, cfg.MaxUploadBytes)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("API is healthy"))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		// Auth endpoints; logout is reachable without a session.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/logout", authHandler.Logout)
			r.With(appMiddleware.RequireSession(cfg.JWTSecret, cfg.AdminEmail)).
				Get("/me", authHandler.Me)
		})

		// Protected upload endpoints
		r.Route("/aws", func(r chi.Router) {
			r.Use(appMiddleware.RequireSession(cfg.JWTSecret, cfg.AdminEmail))
			r.Post("/upload", uploadHandler.Upload)
			r.Get("/history", uploadHandler.History)
			r.Get("/directories", uploadHandler.Directories)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
