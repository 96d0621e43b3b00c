package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/nickmonteleone/sharebandb-backend/internal/config"
	"github.com/nickmonteleone/sharebandb-backend/internal/database"
	postgresrepo "github.com/nickmonteleone/sharebandb-backend/internal/repository/postgres"
	"github.com/nickmonteleone/sharebandb-backend/internal/service"
	"github.com/nickmonteleone/sharebandb-backend/internal/storage"
	"github.com/nickmonteleone/sharebandb-backend/internal/transport/http/handlers"
	"github.com/nickmonteleone/sharebandb-backend/internal/transport/http/middleware"
	"github.com/nickmonteleone/sharebandb-backend/internal/transport/ws"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connect", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Object storage
	photoStorage, err := storage.NewMinioStorage(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL, logger)
	if err != nil {
		logger.Fatal("object storage init", zap.Error(err))
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	listingRepo := postgresrepo.NewListingRepo(pool)
	photoRepo := postgresrepo.NewPhotoRepo(pool)

	// Listing events feed
	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewHubNotifier(hub)

	// Services
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	listingService := service.NewListingService(listingRepo, photoRepo, notifier, cfg.OwnerFromToken)
	photoService := service.NewPhotoService(photoRepo, listingRepo, photoStorage, notifier)
	userService := service.NewUserService(userRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	listingHandler := handlers.NewListingHandler(listingService, photoService, cfg.OwnerFromToken, logger)
	userHandler := handlers.NewUserHandler(userService, logger)

	// Auth middleware
	auth := middleware.Auth(authService)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /listings", listingHandler.List)
	mux.HandleFunc("GET /listings/{id}", listingHandler.Get)
	mux.HandleFunc("GET /users/{id}", userHandler.Get)

	// Protected
	mux.Handle("POST /listings", auth(http.HandlerFunc(listingHandler.Create)))
	mux.Handle("POST /listings/{id}/photos", auth(http.HandlerFunc(listingHandler.AddPhoto)))
	mux.Handle("DELETE /listings/{id}", auth(http.HandlerFunc(listingHandler.Delete)))
	mux.Handle("DELETE /users/{id}", auth(http.HandlerFunc(userHandler.Delete)))

	// Outer mux: the ws upgrade bypasses the logging wrapper because the
	// upgrade needs the raw ResponseWriter.
	outer := http.NewServeMux()
	outer.Handle("GET /ws", ws.ServeWS(hub, authService))
	outer.Handle("/", middleware.RequestLogger(logger)(mux))

	// Start server with CORS
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Info("starting server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, middleware.CORS(outer)); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
