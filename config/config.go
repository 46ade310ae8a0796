package config

import (
	"os"
	"strconv"
	"time"

	"flight-ticket-stats/pkg/logger"

	"go.uber.org/zap"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Tickets  TicketsConfig
	Route    RouteConfig
	HTTP     HTTPConfig
	Cache    CacheConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type TicketsConfig struct {
	Source string
	File   string
}

// RouteConfig is the origin/destination pair reported when the caller
// does not ask for one.
type RouteConfig struct {
	Origin      string
	Destination string
}

type HTTPConfig struct {
	Addr string
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Tickets:  GetTicketsConfig(),
		Route:    GetRouteConfig(),
		HTTP:     HTTPConfig{Addr: getEnv("HTTP_ADDR", ":8080")},
		Cache:    GetCacheConfig(),
		Database: GetDatabaseConfig(),
		Redis:    GetRedisConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	return &Config{
		Tickets: TicketsConfig{
			Source: SourceFile,
			File:   "tickets.json",
		},
		Route: RouteConfig{
			Origin:      "VVO",
			Destination: "TLV",
		},
		HTTP: HTTPConfig{Addr: ":0"},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Minute,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433", // test DB listens on 5433
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380", // test Redis listens on 6380
			Password: "",
			DB:       1,
		},
	}
}

func GetTicketsConfig() TicketsConfig {
	return TicketsConfig{
		Source: getEnv("TICKETS_SOURCE", SourceFile),
		File:   getEnv("TICKETS_FILE", "tickets.json"),
	}
}

func GetRouteConfig() RouteConfig {
	return RouteConfig{
		Origin:      getEnv("ROUTE_ORIGIN", "VVO"),
		Destination: getEnv("ROUTE_DESTINATION", "TLV"),
	}
}

func GetCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: getEnvBool("REPORT_CACHE_ENABLED", false),
		TTL:     time.Duration(getEnvInt("REPORT_CACHE_TTL_SECONDS", 60)) * time.Second,
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvBool and getEnvInt fall back to the default on malformed values so
// a bad optional setting never aborts the run.
func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		invalidEnv(key, value, err)
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		invalidEnv(key, value, err)
		return fallback
	}
	return parsed
}

func invalidEnv(key, value string, err error) {
	logger.WithComponent("config").Warn("Invalid environment value, using default",
		zap.String("key", key),
		zap.String("value", value),
		zap.Error(err),
	)
}
