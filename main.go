package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotel-records/config"
	"hotel-records/controllers"
	"hotel-records/routes"
	"hotel-records/services"
	"hotel-records/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services
	store := storage.New(db)
	catalogService := services.NewRoomCatalogService(store)
	guestService := services.NewGuestService(store)
	reservationService := services.NewReservationService(store, guestService, catalogService)

	if cfg.SeedRoomTypes {
		if err := seedRoomTypes(context.Background(), catalogService); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
	}

	// Initialize controllers
	roomTypeController := controllers.NewRoomTypeController(catalogService)
	roomController := controllers.NewRoomController(catalogService)
	guestController := controllers.NewGuestController(guestService)
	reservationController := controllers.NewReservationController(reservationService)

	// Build router
	router := routes.SetupRouter(roomTypeController, roomController, guestController, reservationController, cfg.CORSOrigins)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Server stopped gracefully")
}
