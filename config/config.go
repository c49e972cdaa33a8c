package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	MessageBus    MessageBusConfig
	NewRelic      NewRelicConfig
	Elasticsearch ElasticsearchConfig
	Logging       LoggingConfig
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	Mode            string // debug, release, test
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds the database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	Debug    bool
	MaxConn  int
	MaxIdle  int
	MaxLife  time.Duration
}

// RedisConfig holds the Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// MessageBusConfig holds the Azure Service Bus configuration
type MessageBusConfig struct {
	Enabled          bool
	ConnectionString string
	Prefix           string
	EventsQueue      string
}

// NewRelicConfig holds the New Relic configuration
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// ElasticsearchConfig holds the Elasticsearch configuration
type ElasticsearchConfig struct {
	Enabled  bool
	URLs     []string
	Username string
	Password string
	Index    string
}

// LoggingConfig holds the logging configuration
type LoggingConfig struct {
	Level string
	JSON  bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Server
	port, _ := strconv.Atoi(getEnv("PORT", "8090"))
	readTimeout, _ := time.ParseDuration(getEnv("SERVER_READ_TIMEOUT", "15s"))
	writeTimeout, _ := time.ParseDuration(getEnv("SERVER_WRITE_TIMEOUT", "15s"))
	shutdownTimeout, _ := time.ParseDuration(getEnv("SERVER_SHUTDOWN_TIMEOUT", "10s"))

	// Database
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	dbDebug, _ := strconv.ParseBool(getEnv("DB_DEBUG", "false"))
	dbMaxConn, _ := strconv.Atoi(getEnv("DB_MAX_CONN", "20"))
	dbMaxIdle, _ := strconv.Atoi(getEnv("DB_MAX_IDLE", "5"))
	dbMaxLife, _ := time.ParseDuration(getEnv("DB_MAX_LIFE", "30m"))

	// Redis
	redisEnabled, _ := strconv.ParseBool(getEnv("REDIS_ENABLED", "true"))
	redisPort, _ := strconv.Atoi(getEnv("REDIS_PORT", "6379"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	// Message bus
	busEnabled, _ := strconv.ParseBool(getEnv("SERVICEBUS_ENABLED", "false"))

	// New Relic
	nrEnabled, _ := strconv.ParseBool(getEnv("NEW_RELIC_ENABLED", "false"))

	// Elasticsearch
	esEnabled, _ := strconv.ParseBool(getEnv("ES_ENABLED", "false"))
	esURLs := []string{getEnv("ES_URL", "http://localhost:9200")}

	// Logging
	logJSON, _ := strconv.ParseBool(getEnv("LOG_JSON", "true"))

	return &Config{
		Server: ServerConfig{
			Host:            getEnv("HOST", ""),
			Port:            port,
			Mode:            getEnv("GIN_MODE", "debug"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			Name:     getEnv("DB_NAME", "fleet_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			Debug:    dbDebug,
			MaxConn:  dbMaxConn,
			MaxIdle:  dbMaxIdle,
			MaxLife:  dbMaxLife,
		},
		Redis: RedisConfig{
			Enabled:  redisEnabled,
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     redisPort,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		MessageBus: MessageBusConfig{
			Enabled:          busEnabled,
			ConnectionString: getEnv("SERVICEBUS_CONNECTION_STRING", ""),
			Prefix:           getEnv("SERVICEBUS_PREFIX", ""),
			EventsQueue:      getEnv("SERVICEBUS_EVENTS_QUEUE", "fleet-events"),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "Fleet Service"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    nrEnabled,
		},
		Elasticsearch: ElasticsearchConfig{
			Enabled:  esEnabled,
			URLs:     esURLs,
			Username: getEnv("ES_USERNAME", ""),
			Password: getEnv("ES_PASSWORD", ""),
			Index:    getEnv("ES_INDEX", "fleet-entities"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			JSON:  logJSON,
		},
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
