package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	QemuBinary string
	Machine    string
	LogLevel   string
}

// Load loads configuration from environment variables
// Automatically loads .env file if present
func Load() *Config {
	// Try to load .env file (fail silently if not present)
	_ = godotenv.Load()

	cfg := &Config{
		QemuBinary: getEnv("RUNQEMU_QEMU_BINARY", "qemu-system-aarch64"),
		Machine:    getEnv("RUNQEMU_MACHINE", "virt"),
		LogLevel:   getEnv("RUNQEMU_LOG_LEVEL", "info"),
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
