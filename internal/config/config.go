package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store drivers selectable via STORE_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongodb"
	DriverMemory   = "memory"
)

const defaultMongoDatabase = "giftcards"

// Config holds all configuration for the service
type Config struct {
	Environment      string
	Port             string
	StoreDriver      string
	DatabaseURL      string
	MongoURI         string
	RedisURL         string
	NATSURL          string
	AdminToken       string
	RejectDuplicates bool
}

// Load loads configuration from environment variables. When STORE_DRIVER is
// unset the driver is inferred from whichever connection string is present.
func Load() *Config {
	cfg := &Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		Port:             getEnv("PORT", "8080"),
		StoreDriver:      getEnv("STORE_DRIVER", ""),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		MongoURI:         getEnv("MONGODB_URI", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		NATSURL:          getEnv("NATS_URL", ""),
		AdminToken:       getEnv("ADMIN_TOKEN", ""),
		RejectDuplicates: getBoolEnv("REJECT_DUPLICATE_CARDS", false),
	}

	if cfg.StoreDriver == "" {
		switch {
		case cfg.DatabaseURL != "":
			cfg.StoreDriver = DriverPostgres
		case cfg.MongoURI != "":
			cfg.StoreDriver = DriverMongo
		default:
			cfg.StoreDriver = DriverMemory
		}
	}

	return cfg
}

// Validate fails fast when the chosen store driver is missing its connection
// string.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s store driver", DriverPostgres)
		}
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required for the %s store driver", DriverMongo)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// InitDB initializes the Postgres connection
func InitDB(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Environment == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// InitMongo initializes the MongoDB connection and returns the database named
// in the URI path, or a default when the URI carries no database name.
func InitMongo(cfg *Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client.Database(MongoDatabaseName(cfg.MongoURI)), nil
}

// MongoDatabaseName extracts the database name from a MongoDB URI.
func MongoDatabaseName(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return defaultMongoDatabase
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return defaultMongoDatabase
	}
	return name
}
