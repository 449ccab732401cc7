package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Database     DatabaseConfig
	JWT          JWTConfig
	App          AppConfig
	Redis        RedisConfig
	Kafka        KafkaConfig
	Compliance   ComplianceConfig
	Notification NotificationConfig
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" validate:"required"`
	Port     int    `env:"DB_PORT" validate:"min=1,max=65535"`
	User     string `env:"DB_USER" validate:"required"`
	Password string `env:"DB_PASSWORD" validate:"required"`
	Name     string `env:"DB_NAME" validate:"required"`
	SSLMode  string `env:"DB_SSL_MODE" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns int32  `env:"DB_MAX_CONNS" validate:"min=0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `env:"JWT_SECRET_KEY" validate:"required"`
	AccessExpiration string `env:"JWT_ACCESS_EXPIRATION_TIME" validate:"required"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int      `env:"APP_PORT" validate:"min=1,max=65535"`
	Env            string   `env:"APP_ENV" validate:"oneof=development staging production test"`
	LogLevel       string   `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Version        string   `env:"APP_VERSION"`
	Timezone       string   `env:"APP_TIMEZONE" validate:"required"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" validate:"dive,required"`
}

// RedisConfig enables the distributed registration lock when URL is set.
type RedisConfig struct {
	URL string `env:"REDIS_URL" validate:"omitempty,url"`
}

// KafkaConfig enables flagged-punch events when Brokers is set.
type KafkaConfig struct {
	Brokers  []string `env:"KAFKA_BROKERS" validate:"dive,hostname_port"`
	Topic    string   `env:"KAFKA_TOPIC" validate:"required_with=Brokers"`
	ClientID string   `env:"KAFKA_CLIENT_ID"`
}

type ComplianceConfig struct {
	RetryInterval    time.Duration `env:"COMPLIANCE_RETRY_INTERVAL" validate:"min=1s"`
	RetryGrace       time.Duration `env:"COMPLIANCE_RETRY_GRACE" validate:"min=0"`
	RetryBatchSize   int           `env:"COMPLIANCE_RETRY_BATCH_SIZE" validate:"min=1"`
	RetryConcurrency int           `env:"COMPLIANCE_RETRY_CONCURRENCY" validate:"min=1"`
}

type NotificationConfig struct {
	WorkerCount int `env:"NOTIFICATION_WORKERS" validate:"min=1"`
	QueueSize   int `env:"NOTIFICATION_QUEUE_SIZE" validate:"min=1"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	var errs []error

	// Database configuration
	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432, &errs),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pontolegal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvInt("DB_MAX_CONNS", 0, &errs)),
	}

	// Application configuration
	config.App = AppConfig{
		Port:           getEnvInt("APP_PORT", 8080, &errs),
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Version:        getEnv("APP_VERSION", "dev"),
		Timezone:       getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Redis = RedisConfig{
		URL: getEnv("REDIS_URL", ""),
	}

	config.Kafka = KafkaConfig{
		Brokers:  getEnvSlice("KAFKA_BROKERS", ""),
		Topic:    getEnv("KAFKA_TOPIC", "pontolegal.punch-flagged"),
		ClientID: getEnv("KAFKA_CLIENT_ID", "pontolegal-api"),
	}

	config.Compliance = ComplianceConfig{
		RetryInterval:    getEnvDuration("COMPLIANCE_RETRY_INTERVAL", 5*time.Minute, &errs),
		RetryGrace:       getEnvDuration("COMPLIANCE_RETRY_GRACE", time.Minute, &errs),
		RetryBatchSize:   getEnvInt("COMPLIANCE_RETRY_BATCH_SIZE", 100, &errs),
		RetryConcurrency: getEnvInt("COMPLIANCE_RETRY_CONCURRENCY", 4, &errs),
	}

	config.Notification = NotificationConfig{
		WorkerCount: getEnvInt("NOTIFICATION_WORKERS", 2, &errs),
		QueueSize:   getEnvInt("NOTIFICATION_QUEUE_SIZE", 1000, &errs),
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report failures by environment variable name
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("env"); name != "" {
			return name
		}
		return field.Name
	})
	return v
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}

	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the business timezone punches are dated in.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return loc, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("invalid %s: %w", key, err))
		return fallback
	}
	return d
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
