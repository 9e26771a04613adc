package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// Database Configuration (MySQL)
	Database DatabaseConfig `json:"database"`

	// MongoDB Configuration
	MongoDB MongoDBConfig `json:"mongodb"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`

	Health HealthConfig `json:"health"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	GRPCPort     string `json:"grpc_port"`
	ReadTimeout  int    `json:"read_timeout"`  // Seconds
	WriteTimeout int    `json:"write_timeout"` // Seconds
	Environment  string `json:"environment"`   // development, staging, production
	CookieSecret string `json:"-"`
	SessionTTL   int    `json:"session_ttl"` // Hours
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

type HealthConfig struct {
	CheckInterval int `json:"check_interval"` // Seconds
}

var defaults = map[string]interface{}{
	"SERVER_HOST":           "0.0.0.0",
	"SERVER_PORT":           "1988",
	"GRPC_PORT":             "7005",
	"SERVER_READ_TIMEOUT":   15,
	"SERVER_WRITE_TIMEOUT":  15,
	"APP_ENV":               "development",
	"COOKIE_SECRET":         "change-me",
	"SESSION_TTL_HOURS":     24,
	"MYSQL_HOST":            "localhost",
	"MYSQL_PORT":            "3306",
	"MYSQL_USERNAME":        "root",
	"MYSQL_PASSWORD":        "",
	"MYSQL_DATABASE":        "msgboard",
	"MYSQL_MAX_OPEN_CONNS":  25,
	"MYSQL_MAX_IDLE_CONNS":  5,
	"MONGO_HOST":            "localhost",
	"MONGO_PORT":            "27017",
	"MONGO_USERNAME":        "",
	"MONGO_PASSWORD":        "",
	"MONGO_DATABASE":        "msgboard",
	"LOG_LEVEL":             "info",
	"LOG_FORMAT":            "text",
	"HEALTH_CHECK_INTERVAL": 30,
}

// LoadConfig builds the configuration from environment variables, falling
// back to defaults for anything unset.
func LoadConfig() *Config {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	return &Config{
		Server: ServerConfig{
			Host:         v.GetString("SERVER_HOST"),
			Port:         v.GetString("SERVER_PORT"),
			GRPCPort:     v.GetString("GRPC_PORT"),
			ReadTimeout:  v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout: v.GetInt("SERVER_WRITE_TIMEOUT"),
			Environment:  v.GetString("APP_ENV"),
			CookieSecret: v.GetString("COOKIE_SECRET"),
			SessionTTL:   v.GetInt("SESSION_TTL_HOURS"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("MYSQL_HOST"),
			Port:         v.GetString("MYSQL_PORT"),
			Username:     v.GetString("MYSQL_USERNAME"),
			Password:     v.GetString("MYSQL_PASSWORD"),
			DatabaseName: v.GetString("MYSQL_DATABASE"),
			MaxOpenConns: v.GetInt("MYSQL_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("MYSQL_MAX_IDLE_CONNS"),
		},
		MongoDB: MongoDBConfig{
			Host:     v.GetString("MONGO_HOST"),
			Port:     v.GetString("MONGO_PORT"),
			Username: v.GetString("MONGO_USERNAME"),
			Password: v.GetString("MONGO_PASSWORD"),
			Database: v.GetString("MONGO_DATABASE"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Health: HealthConfig{
			CheckInterval: v.GetInt("HEALTH_CHECK_INTERVAL"),
		},
	}
}

func (cfg *Config) DSN() string {
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "3306"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI only adds credentials (and authSource) when a username is set.
func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s/%s",
			cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
		cfg.MongoDB.Database,
	)
}
