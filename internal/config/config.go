package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For list parsing
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	AppPort           string        // Application port
	DBDriver          string        // Database driver: mysql or postgres
	DBUser            string        // Database user
	DBPassword        string        // Database password
	DBHost            string        // Database host
	DBPort            string        // Database port
	DBName            string        // Database name
	DBMaxOpenConns    int           // Pool: max open connections
	DBMaxIdleConns    int           // Pool: max idle connections
	DBConnMaxLifetime time.Duration // Pool: max connection lifetime
	SessionSecret     string        // Session signing secret (no route uses it yet)
	RedisAddr         string        // Redis server address, empty disables the cache
	RedisPass         string        // Redis password
	RedisDB           int           // Redis database number
	UsersCacheTTL     time.Duration // TTL of the cached users listing, zero disables it
	MaxUploadMB       int64         // Max size of a multipart upload in megabytes
	CORSOrigins       []string      // Allowed CORS origins for /api
	IsProd            bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))
	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}
	return &Config{
		AppPort:           getEnv("APP_PORT", "5000"),
		DBDriver:          driver,
		DBUser:            getEnv("DB_USER", "root"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", defaultPort),
		DBName:            getEnv("DB_NAME", "payment_portal"),
		DBMaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		SessionSecret:     getEnv("SESSION_SECRET", "dev_secret_key"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASS"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		UsersCacheTTL:     getEnvDuration("USERS_CACHE_TTL", 0),
		MaxUploadMB:       int64(getEnvInt("MAX_UPLOAD_MB", 8)),
		CORSOrigins:       strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		IsProd:            os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() string {
	if c.DBDriver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
		)
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def // Unset or malformed
	}
	return v
}

// getEnvDuration accepts Go durations ("90s") or plain seconds ("90")
func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
