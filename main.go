package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/avikds/careerpath-be/internal/api"
	"github.com/avikds/careerpath-be/internal/api/handlers"
	"github.com/avikds/careerpath-be/internal/auth"
	"github.com/avikds/careerpath-be/internal/config"
	"github.com/avikds/careerpath-be/internal/database"
	"github.com/avikds/careerpath-be/internal/gemini"
	"github.com/avikds/careerpath-be/internal/logger"
	"github.com/avikds/careerpath-be/internal/services"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up the Gemini client
	generator, err := gemini.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}

	// Set up services and the token issuer
	issuer := auth.NewIssuer(cfg.JWTSecret)
	userService := services.NewUserService(db)
	careerService := services.NewCareerService(db, generator)

	// Set up router
	authHandler := handlers.NewAuthHandler(userService, issuer)
	careerHandler := handlers.NewCareerHandler(careerService)
	router := api.NewRouter(authHandler, careerHandler, issuer)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
