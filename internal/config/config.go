package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides application configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPPort string

	DBType string
	DBPath string

	// Static reference datasets merged into API responses.
	VehicleMasterPath string
	FuelArchivePath   string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "fleetdash"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),

		HTTPPort: getenv("PORT", "5000"),

		DBType: getenv("DATABASE_TYPE", "sqlite"),
		DBPath: getenv("DATABASE_PATH", "fleet.db"),

		VehicleMasterPath: getenv("VEHICLE_MASTER_PATH", "Vehicle Master.json"),
		FuelArchivePath:   getenv("FUEL_ARCHIVE_PATH", "fuel.json"),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}
