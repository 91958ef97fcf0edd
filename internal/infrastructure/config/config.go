// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Store       StoreConfig       `mapstructure:"store"`
	Redis       RedisConfig       `mapstructure:"redis"`
	RecipeAPI   RecipeAPIConfig   `mapstructure:"recipe_api"`
	Grocery     GroceryConfig     `mapstructure:"grocery"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// StoreConfig selects the key-value persistence backend
type StoreConfig struct {
	Backend string `mapstructure:"backend"` // "memory" or "redis"
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Password     string        `mapstructure:"password"`
	Database     int           `mapstructure:"database"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PoolSize     int           `mapstructure:"pool_size"`
}

// Addr returns the host:port address for the Redis client
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RecipeAPIConfig contains recipe source configuration
type RecipeAPIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxResults int           `mapstructure:"max_results"`
}

// GroceryConfig contains grocery simulator configuration
type GroceryConfig struct {
	FailureRate float64 `mapstructure:"failure_rate"`
	DeliveryFee float64 `mapstructure:"delivery_fee"`
	Currency    string  `mapstructure:"currency"`
}

// Load reads configuration from defaults, an optional config file, a
// .env file if present, and FRIDGECHEF_-prefixed environment variables.
func Load() (*Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FRIDGECHEF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fridgechef")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "console")

	v.SetDefault("store.backend", "memory")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("redis.read_timeout", "3s")
	v.SetDefault("redis.write_timeout", "3s")
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("recipe_api.base_url", "https://api.spoonacular.com")
	v.SetDefault("recipe_api.timeout", "10s")
	v.SetDefault("recipe_api.max_results", 10)

	v.SetDefault("grocery.failure_rate", 0.1)
	v.SetDefault("grocery.delivery_fee", 4.99)
	v.SetDefault("grocery.currency", "USD")
}

func validate(cfg *Config) error {
	switch cfg.Store.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	if cfg.Store.Backend == "redis" && cfg.Redis.Host == "" {
		return fmt.Errorf("redis host is required for the redis backend")
	}

	if cfg.Grocery.FailureRate < 0 || cfg.Grocery.FailureRate > 1 {
		return fmt.Errorf("grocery failure rate must be within [0,1]")
	}

	if cfg.RecipeAPI.MaxResults <= 0 {
		return fmt.Errorf("recipe api max results must be positive")
	}

	return nil
}
