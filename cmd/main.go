// @title Fitzen Backend API
// @version 1.0
// @description Fitzen Backend API for AI fitness coaching and progress tracking
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5001
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "FITZEN_BACK-END/docs" // This is required for swagger
	"FITZEN_BACK-END/internal/config"
	"FITZEN_BACK-END/internal/handlers"
	"FITZEN_BACK-END/internal/logger"
	"FITZEN_BACK-END/internal/middleware"
	"FITZEN_BACK-END/internal/repository"
	"FITZEN_BACK-END/internal/routes"
	"FITZEN_BACK-END/internal/services"
)

//go:generate swag init -d ../ -g cmd/main.go -o ../docs --parseInternal

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logCloser, err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputPath: cfg.Log.Output,
		Format:     cfg.Log.Format,
	})
	if err != nil {
		logger.Fatal("Failed to initialise logger", "error", err)
	}
	defer logCloser.Close()

	// Create the data directory and every table header up front
	stores, err := repository.NewStores(cfg.Storage.DataDir)
	if err != nil {
		logger.Fatal("Failed to initialise storage", "data_dir", cfg.Storage.DataDir, "error", err)
	}
	logger.Info("Storage ready", "data_dir", cfg.Storage.DataDir)

	// Text generation; without a key every advice call answers with the fallback
	var generator services.Generator = services.UnavailableGenerator{}
	if cfg.IsAIConfigured() {
		gemini, err := services.NewGeminiGenerator(context.Background(), cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			logger.Error("Gemini client unavailable, using fallback responses", "error", err)
		} else {
			defer gemini.Close()
			generator = gemini
			logger.Info("Gemini client ready", "model", cfg.AI.Model)
		}
	}

	// --- Services ---
	clock := services.Clock(services.SystemClock)
	tracker := services.NewTracker(stores, clock)
	accounts := services.NewAccounts(stores, clock)
	advice := services.NewAdviceService(generator, cfg.AI.MaxTokens, cfg.AI.PlanMaxTokens)
	chat := services.NewChatService(stores, advice, clock)

	// --- HTTP Handlers ---
	var google handlers.GoogleVerifier
	if cfg.GoogleOAuth.VerifyTokens {
		google = handlers.NewGoogleTokenVerifier(cfg.GoogleOAuth.ClientID)
	}

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, cfg, routes.Handlers{
		Health:       handlers.NewHealthHandler(cfg.Storage.DataDir),
		Auth:         handlers.NewAuthHandler(accounts, cfg, google),
		Users:        handlers.NewUsersHandler(stores),
		Workouts:     handlers.NewWorkoutsHandler(stores, tracker, advice),
		Nutrition:    handlers.NewNutritionHandler(stores, tracker, advice),
		Goals:        handlers.NewGoalsHandler(stores, tracker),
		Habits:       handlers.NewHabitsHandler(stores, tracker, advice),
		Measurements: handlers.NewMeasurementsHandler(stores, tracker),
		Reminders:    handlers.NewRemindersHandler(stores, tracker),
		Chat:         handlers.NewChatHandler(chat),
	})

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	// Wrap the mux with request logging and CORS
	handler := c.Handler(middleware.RequestLogger(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr, "api_prefix", cfg.Server.APIPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe failed", "error", err)
		}
	}()

	// Wait for SIGINT/SIGTERM to shut down gracefully
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
