package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	TokenSecret   string
	StripeKey     string
}

// Load reads .env if present and falls back to the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		Port:          getEnv("PORT", "5000"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: getEnv("MONGO_DATABASE", "doctorPortal"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		StripeKey:     os.Getenv("STRIPE_SECRET_KEY"),
	}

	// Atlas-style URI assembled from parts when MONGO_URI is not set directly.
	if cfg.MongoURI == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		cluster := os.Getenv("DB_C")
		if user != "" && pass != "" && cluster != "" {
			cfg.MongoURI = fmt.Sprintf(
				"mongodb+srv://%s:%s@cluster0.%s.mongodb.net/?retryWrites=true&w=majority",
				user, pass, cluster,
			)
		} else {
			cfg.MongoURI = "mongodb://localhost:27017"
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
