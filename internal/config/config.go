package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
	"time"
)

const defaultSessionTTLMinutes = 30

type DB struct {
	DbDRIVER   string
	DbURL      string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	URLExpiry  time.Duration
}

type Config struct {
	ServerPort        int
	DB                DB
	MinIO             MinIO
	JWTSecretKey      string
	SessionTTLMinutes int
	MigrationsPath    string
}

// SessionTTL is the lifetime of an issued session token.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// ExportEnabled reports whether object storage for post exports is configured.
func (m MinIO) ExportEnabled() bool {
	return m.Endpoint != ""
}

// DSN returns DATABASE_URL when set, otherwise builds a key/value connection string.
func (d DB) DSN() string {
	if d.DbURL != "" {
		return d.DbURL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		d.DbPASSWORD,
		d.DbNAME,
		d.DbSSLMODE,
	)
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY не установлен")
	}

	if c.SessionTTLMinutes < 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES не может быть отрицательным: %d", c.SessionTTLMinutes)
	}

	switch c.DB.DbDRIVER {
	case "postgres", "pgx":
	default:
		return fmt.Errorf("неподдерживаемый DB_DRIVER: %s", c.DB.DbDRIVER)
	}

	return nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbDRIVER:   getEnv("DB_DRIVER", "postgres"),
		DbURL:      getEnv("DATABASE_URL", ""),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "microblog"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "exports"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		URLExpiry:  parseDuration(getEnv("MINIO_URL_EXPIRY", "24h"), 24*time.Hour),
	}
}

// loadSecret prefers JWT_SECRET_KEY and falls back to SECRET_KEY.
func loadSecret() string {
	if secret := getEnv("JWT_SECRET_KEY", ""); secret != "" {
		return secret
	}
	return getEnv("SECRET_KEY", "")
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:        getEnvAsInt("SERVER_PORT", 8080),
		DB:                LoadDB(),
		MinIO:             LoadMinIO(),
		JWTSecretKey:      loadSecret(),
		SessionTTLMinutes: getEnvAsInt("ACCESS_TOKEN_EXPIRE_MINUTES", defaultSessionTTLMinutes),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
	}
}
