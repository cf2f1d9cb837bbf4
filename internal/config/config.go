package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HotelName         string
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. Every value has a default so a bare environment still runs.
func Load() Config {
	// A missing .env file is fine.
	_ = godotenv.Load()

	return Config{
		HotelName:         getenv("HOTEL_NAME", "Grand Horizon"),
		Host:              getenv("APP_HOST", "localhost"),
		Port:              getenv("APP_PORT", "8092"),
		ReadHeaderTimeout: time.Duration(getenvInt("READ_HEADER_TIMEOUT_SECONDS", 20)), //nolint:gomnd
		LivenessEndpoint:  getenv("LIVENESS_ENDPOINT", "/liveness"),
	}
}

func getenv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}

	return v
}

func getenvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
