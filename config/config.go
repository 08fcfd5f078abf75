package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Petfinder PetfinderConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PetfinderConfig holds credentials and endpoint for the listings provider.
// Both credential values are optional; when either is missing the client
// runs in mock mode instead of failing startup.
type PetfinderConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds the TTL for each cache table
type CacheConfig struct {
	SearchTTL       time.Duration `mapstructure:"search_ttl"`
	AnimalTTL       time.Duration `mapstructure:"animal_ttl"`
	OrganizationTTL time.Duration `mapstructure:"organization_ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP     int `mapstructure:"per_ip"`
	Petfinder int `mapstructure:"petfinder"`
}

// Snapshot is the read-only view of the provider configuration exposed to
// developer tooling. It deliberately has no secret field.
type Snapshot struct {
	BaseURL        string `json:"baseUrl"`
	ClientID       string `json:"clientId,omitempty"`
	HasCredentials bool   `json:"hasCredentials"`
}

// HasCredentials reports whether both credential values are configured
func (p PetfinderConfig) HasCredentials() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// Snapshot returns the provider config without the client secret
func (p PetfinderConfig) Snapshot() Snapshot {
	return Snapshot{
		BaseURL:        p.BaseURL,
		ClientID:       p.ClientID,
		HasCredentials: p.HasCredentials(),
	}
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/petscout/")

	// Environment variable settings
	v.SetEnvPrefix("PETSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Provider defaults
	v.SetDefault("petfinder.base_url", "https://api.petfinder.com/v2")
	v.SetDefault("petfinder.timeout", "30s")

	// Cache defaults: search results are volatile, single animals less so,
	// organizations barely change
	v.SetDefault("cache.search_ttl", "60s")
	v.SetDefault("cache.animal_ttl", "5m")
	v.SetDefault("cache.organization_ttl", "15m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.petfinder", 1000)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Petfinder.BaseURL == "" {
		return fmt.Errorf("provider base URL is required (set PETSCOUT_PETFINDER_BASE_URL)")
	}

	if config.Petfinder.Timeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got: %s", config.Petfinder.Timeout)
	}

	return nil
}
