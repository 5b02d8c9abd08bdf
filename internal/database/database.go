package database

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds connection settings for one platform's database.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Stores holds one connection per platform. The Reddit and 4chan crawlers
// write to separate databases, so each platform gets its own handle.
type Stores struct {
	Reddit *gorm.DB
	Chan   *gorm.DB
}

// LoadConfig loads connection settings from environment variables using the
// given prefix (e.g. REDDIT_DB_HOST, CHAN_DB_HOST).
func LoadConfig(prefix, defaultDBName string) *Config {
	return &Config{
		Host:     getEnv(prefix+"_DB_HOST", "localhost"),
		Port:     getEnv(prefix+"_DB_PORT", "5432"),
		User:     getEnv(prefix+"_DB_USER", "postgres"),
		Password: getEnv(prefix+"_DB_PASSWORD", ""),
		DBName:   getEnv(prefix+"_DB_NAME", defaultDBName),
		SSLMode:  getEnv(prefix+"_DB_SSLMODE", "disable"),
	}
}

// Connect establishes a connection to a PostgreSQL database.
func Connect(config *Config) (*gorm.DB, error) {
	// Build DSN without empty password parameter
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.DBName, config.SSLMode,
	)
	if config.Password != "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %q: %w", config.DBName, err)
	}

	slog.Info("connected to database", "name", config.DBName, "host", config.Host)
	return db, nil
}

// Close closes the underlying connection pool of a GORM handle.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
