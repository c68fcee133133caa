package initializers

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment.")
	}
}

// MustGetenv returns the value of key, refusing to start with a missing or
// placeholder value. Running against dummy configuration hides misconfiguration
// until the first real request, so we fail at boot instead.
func MustGetenv(key string) string {
	value := os.Getenv(key)
	if value == "" || strings.HasPrefix(value, "your-") {
		log.Fatalf("%s is not configured. Set it in the environment or .env file.", key)
	}
	return value
}

// GetenvFloat reads a float-valued variable, falling back to def when unset.
func GetenvFloat(key string, def float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", key, value)
	}
	return parsed
}
