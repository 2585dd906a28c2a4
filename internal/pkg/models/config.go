package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Redis      RedisConfig
	Upstream   UpstreamConfig
	Directions DirectionsConfig
	Geocode    GeocodeConfig
	Map        MapConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// UpstreamConfig contains the fleet backend API configuration
type UpstreamConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// DirectionsConfig contains the external directions provider configuration
type DirectionsConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// GeocodeConfig contains the external reverse-geocoding provider configuration
type GeocodeConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// MapConfig contains map-view engine configuration
type MapConfig struct {
	PollIntervalSeconds int
	WindowHours         int
	DefaultCenterLat    float64
	DefaultCenterLng    float64
	DefaultZoom         int
	SelectedZoom        int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level  string
	Format string
}
