// Package config loads service settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds every runtime setting of the service.
type Config struct {
	AppPort   string `validate:"required"`
	LogLevel  string `validate:"required,oneof=trace debug info warn error"`
	LogPretty bool

	StoreDriver     string        `validate:"required,oneof=mongo memory"`
	MongoURI        string        `validate:"required_if=StoreDriver mongo"`
	MongoDatabase   string        `validate:"required_if=StoreDriver mongo"`
	MongoCollection string        `validate:"required_if=StoreDriver mongo"`
	MongoTimeout    time.Duration `validate:"gt=0"`

	// RabbitMQURL enables product change events when set.
	RabbitMQURL   string
	RabbitMQQueue string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	return FromViper(v)
}

// FromViper builds a Config from v, filling in defaults for unset keys.
func FromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("STORE_DRIVER", StoreMongo)
	v.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGODB_DATABASE", "ProductDB")
	v.SetDefault("MONGODB_COLLECTION", "Products")
	v.SetDefault("MONGODB_TIMEOUT", 10*time.Second)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "product_events")

	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogPretty:       v.GetBool("LOG_PRETTY"),
		StoreDriver:     v.GetString("STORE_DRIVER"),
		MongoURI:        v.GetString("MONGODB_URI"),
		MongoDatabase:   v.GetString("MONGODB_DATABASE"),
		MongoCollection: v.GetString("MONGODB_COLLECTION"),
		MongoTimeout:    v.GetDuration("MONGODB_TIMEOUT"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:   v.GetString("RABBITMQ_QUEUE"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
