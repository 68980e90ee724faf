package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/usell/billing/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig
	Pricing    PricingConfig `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PricingConfig holds the per-unit charges applied on the invoice summary
// sheet. Kit prices are keyed by product category; categories without an
// entry fall back to KitDefaultPricePerUnit.
type PricingConfig struct {
	CheckChargePerUnit     float64            `validate:"gte=0"`
	KitDefaultPricePerUnit float64            `validate:"gte=0"`
	KitCategoryPrices      map[string]float64 `mapstructure:"kitcategoryprices"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Modify config paths to ensure config.yaml is found
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/usell")

	// Set up environment variables support
	v.SetEnvPrefix("USELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Pricing: PricingConfig{
			CheckChargePerUnit:     1.50,
			KitDefaultPricePerUnit: 5.00,
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}

// KitPricePerUnit returns the configured unit price for a product category,
// falling back to the default when the category has no explicit entry.
func (c PricingConfig) KitPricePerUnit(category string) decimal.Decimal {
	if price, ok := c.KitCategoryPrices[category]; ok {
		return decimal.NewFromFloat(price)
	}
	return decimal.NewFromFloat(c.KitDefaultPricePerUnit)
}

// CheckPricePerUnit returns the per-check processing charge.
func (c PricingConfig) CheckPricePerUnit() decimal.Decimal {
	return decimal.NewFromFloat(c.CheckChargePerUnit)
}
