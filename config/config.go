package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Parsing pipeline
	Parser ParserConfig

	// External Google Maps services
	Google GoogleConfig

	// Inbound traffic
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// ParserConfig configures the utterance parsing pipeline defaults.
type ParserConfig struct {
	Timezone       string
	DefaultRadiusM float64
}

// GoogleConfig holds the Maps Platform key and endpoint overrides. An
// empty key disables geocoding and travel estimation; parsing still works.
type GoogleConfig struct {
	MapsAPIKey            string
	PlacesBaseURL         string
	DistanceMatrixBaseURL string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parsing pipeline
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.DefaultRadiusM = viper.GetFloat64("parser.default_radius_m")

	// Google Maps services
	cfg.Google.MapsAPIKey = viper.GetString("google.maps_api_key")
	cfg.Google.PlacesBaseURL = viper.GetString("google.places_base_url")
	cfg.Google.DistanceMatrixBaseURL = viper.GetString("google.distancematrix_base_url")
	if mapsKey := viper.GetString("google_maps_api_key"); mapsKey != "" {
		cfg.Google.MapsAPIKey = mapsKey
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("parser.default_radius_m", 150)
	viper.SetDefault("rate_limit.per_min", 120)
}
