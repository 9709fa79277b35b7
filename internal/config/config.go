// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Session     SessionConfig
	Browse      BrowseConfig
	Checkout    CheckoutConfig
	Storage     StorageConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type SessionConfig struct {
	JWTSecret string
	TokenTTL  int // in hours
	TTL       int // idle session lifetime, in minutes
}

type BrowseConfig struct {
	PageSize      int // base window when no side panel is open
	PanelPageSize int // base window with the filter panel open
	Increment     int // load-more step
	LoadDelayMs   int // synthetic latency before a load-more completes
}

type CheckoutConfig struct {
	TaxPercent            float64
	FreeShippingThreshold float64
	ShippingFee           float64
	OrderPrefix           string
}

type StorageConfig struct {
	PincodeFile string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Session: SessionConfig{
			JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			TokenTTL:  getEnvAsInt("JWT_TOKEN_TTL", 24),
			TTL:       getEnvAsInt("SESSION_TTL_MINUTES", 120),
		},
		Browse: BrowseConfig{
			PageSize:      getEnvAsInt("BROWSE_PAGE_SIZE", 15),
			PanelPageSize: getEnvAsInt("BROWSE_PANEL_PAGE_SIZE", 10),
			Increment:     getEnvAsInt("BROWSE_INCREMENT", 10),
			LoadDelayMs:   getEnvAsInt("BROWSE_LOAD_DELAY_MS", 500),
		},
		Checkout: CheckoutConfig{
			TaxPercent:            getEnvAsFloat("CHECKOUT_TAX_PERCENT", 8.0),
			FreeShippingThreshold: getEnvAsFloat("CHECKOUT_FREE_SHIPPING_OVER", 50.0),
			ShippingFee:           getEnvAsFloat("CHECKOUT_SHIPPING_FEE", 4.99),
			OrderPrefix:           getEnv("CHECKOUT_ORDER_PREFIX", "ORD"),
		},
		Storage: StorageConfig{
			PincodeFile: getEnv("PINCODE_FILE", "./data/pincode.json"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Session.JWTSecret == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Browse.PageSize < 1 || c.Browse.PanelPageSize < 1 || c.Browse.Increment < 1 {
		return fmt.Errorf("browse page sizes and increment must be positive")
	}

	if c.Checkout.TaxPercent < 0 || c.Checkout.ShippingFee < 0 {
		return fmt.Errorf("checkout rates must be non-negative")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
