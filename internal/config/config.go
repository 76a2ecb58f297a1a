package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Mail     MailConfig
	Upload   UploadConfig
	Admin    AdminConfig
	LogLevel string
}

type ServerConfig struct {
	Host string
	Port string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxOpenConns int
	MaxIdleConns int
}

type JWTConfig struct {
	SecretKey  string
	AccessExp  time.Duration
	RefreshExp time.Duration
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
	Workers  int
}

type UploadConfig struct {
	Dir          string
	MaxSizeBytes int64
}

// AdminConfig is the bootstrap admin account created by the migrate step.
type AdminConfig struct {
	Email    string
	Password string
}

// Load reads configuration from an env file (if present) and the
// process environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("APP_HOST", "0.0.0.0"),
			Port: getEnv("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("POSTGRES_HOST", "localhost"),
			Port:         getEnvAsInt("POSTGRES_PORT", 5432),
			User:         getEnv("POSTGRES_USER", "nawi"),
			Password:     getEnv("POSTGRES_PASSWORD", "nawi"),
			Name:         getEnv("POSTGRES_DB", "nawi"),
			MaxOpenConns: getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 16),
			MaxIdleConns: getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 8),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "jwt-dev-secret-key"),
			AccessExp:  time.Duration(getEnvAsInt("JWT_ACCESS_EXP_HOURS", 24)) * time.Hour,
			RefreshExp: time.Duration(getEnvAsInt("JWT_REFRESH_EXP_DAYS", 30)) * 24 * time.Hour,
		},
		Mail: MailConfig{
			Host:     getEnv("MAIL_SERVER", "smtp.gmail.com"),
			Port:     getEnvAsInt("MAIL_PORT", 587),
			Username: getEnv("MAIL_USERNAME", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			Sender:   getEnv("MAIL_DEFAULT_SENDER", "nawycompany@gmail.com"),
			Workers:  getEnvAsInt("MAIL_WORKERS", 2),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "static/uploads"),
			MaxSizeBytes: int64(getEnvAsInt("UPLOAD_MAX_MB", 16)) << 20,
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", "nawycompany@gmail.com"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("APP_PORT must be numeric: %q", c.Server.Port)
	}
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	return nil
}

// DSN builds the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
