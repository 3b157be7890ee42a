package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/doctorportal/api/internal/auth"
	"github.com/doctorportal/api/internal/config"
	"github.com/doctorportal/api/internal/db"
	"github.com/doctorportal/api/internal/handlers"
	"github.com/doctorportal/api/internal/payments"
	"github.com/doctorportal/api/internal/services"
	"github.com/doctorportal/api/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	client := db.Connect(cfg.MongoURI)
	log.Println("db connected")

	documents := store.NewMongo(client.Database(cfg.MongoDatabase))

	h := handlers.New(
		services.NewAppointmentService(documents),
		services.NewUserService(documents),
		services.NewDoctorService(documents),
		payments.NewStripeClient(cfg.StripeKey),
	)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	h.Routes(app, auth.NewTokenVerifier(cfg.TokenSecret))

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	// Drain in-flight requests on SIGINT/SIGTERM, then release the client.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("forced shutdown: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
