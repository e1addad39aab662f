package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// OutfitsPath is the outfit definitions file loaded at startup
	OutfitsPath string

	// Cost-curve tuning; see internal/depreciation for semantics
	DepreciationMin  float64
	DepreciationMax  float64
	DepreciationRate float64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		OutfitsPath: getEnv("OUTFITS_PATH", DefaultOutfitsPath),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.DepreciationMin, err = getEnvFloat("DEPRECIATION_MIN", DefaultDepreciationMin); err != nil {
		return nil, err
	}
	if cfg.DepreciationMax, err = getEnvFloat("DEPRECIATION_MAX", DefaultDepreciationMax); err != nil {
		return nil, err
	}
	if cfg.DepreciationRate, err = getEnvFloat("DEPRECIATION_RATE", DefaultDepreciationRate); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	if c.DepreciationMin <= 0 || c.DepreciationMin > 1 {
		return fmt.Errorf("DEPRECIATION_MIN %v must be in (0,1]", c.DepreciationMin)
	}
	if c.DepreciationMax < c.DepreciationMin || c.DepreciationMax > 1 {
		return fmt.Errorf("DEPRECIATION_MAX %v must be in [DEPRECIATION_MIN,1]", c.DepreciationMax)
	}
	if c.DepreciationRate <= 0 {
		return fmt.Errorf("DEPRECIATION_RATE %v must be positive", c.DepreciationRate)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}
