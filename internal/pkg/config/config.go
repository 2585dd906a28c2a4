package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// InitConfig loads configuration from a .env file (local environments only)
// and then from environment variables.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "mapview-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9980)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// Upstream fleet API config
	configs.Upstream.BaseURL = GetEnv("UPSTREAM_API_URL", "http://localhost:9981")
	configs.Upstream.TimeoutSeconds = GetEnvAsInt("UPSTREAM_TIMEOUT_SECONDS", 10)

	// Directions provider config
	configs.Directions.BaseURL = GetEnv("DIRECTIONS_API_URL", "")
	configs.Directions.APIKey = GetEnv("DIRECTIONS_API_KEY", "")
	configs.Directions.TimeoutSeconds = GetEnvAsInt("DIRECTIONS_TIMEOUT_SECONDS", 10)

	// Reverse-geocoding provider config
	configs.Geocode.BaseURL = GetEnv("GEOCODE_API_URL", "")
	configs.Geocode.APIKey = GetEnv("GEOCODE_API_KEY", "")
	configs.Geocode.TimeoutSeconds = GetEnvAsInt("GEOCODE_TIMEOUT_SECONDS", 10)

	// Map view config
	configs.Map.PollIntervalSeconds = GetEnvAsInt("MAP_POLL_INTERVAL_SECONDS", 20)
	configs.Map.WindowHours = GetEnvAsInt("MAP_WINDOW_HOURS", 4)
	configs.Map.DefaultCenterLat = GetEnvAsFloat("MAP_DEFAULT_CENTER_LAT", 18.7904)
	configs.Map.DefaultCenterLng = GetEnvAsFloat("MAP_DEFAULT_CENTER_LNG", 98.9847)
	configs.Map.DefaultZoom = GetEnvAsInt("MAP_DEFAULT_ZOOM", 6)
	configs.Map.SelectedZoom = GetEnvAsInt("MAP_SELECTED_ZOOM", 16)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.Format = GetEnv("LOG_FORMAT", "json")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
