package server

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config carries the server defaults. Clients can override obstacles, seed
// and layout per scenario.
type Config struct {
	Port      string // HTTP port
	Obstacles int    // random obstacles scattered by default, negative for none
	Seed      int64  // placement seed, 0 means time-based
	Layout    string // layout file path, empty for the fixed layout
}

// FromEnv loads the configuration from environment variables, reading an
// optional .env file first.
func FromEnv() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}
	return Config{
		Port:      envWithDefault("PORT", "8080"),
		Obstacles: envIntWithDefault("ROVER_OBSTACLES", 20),
		Seed:      int64(envIntWithDefault("ROVER_SEED", 0)),
		Layout:    envWithDefault("ROVER_LAYOUT", ""),
	}
}

func envWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func envIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warnf("%s must be an integer, got %q, using %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
