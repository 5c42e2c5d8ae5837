package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile          = ".env"
	defaultPort             = "8000"
	defaultReadTimeout      = 15 * time.Second
	defaultWriteTimeout     = 60 * time.Second
	defaultIdleTimeout      = 120 * time.Second
	defaultShutdownTimeout  = 5 * time.Second
	defaultSpannerDatabase  = "projects/test-project/instances/emulator-instance/databases/test-db"
	defaultAdminLogin       = "admin"
	defaultJWTSecret        = "change-me-in-production"
	defaultTokenTTL         = 60 * time.Minute
	defaultLoginPerMinute   = 5
	defaultStorageDriver    = "local"
	defaultStoragePath      = "./storage"
	defaultMaxFileSizeMB    = 50.0
	defaultImageTypes       = "image/jpeg,image/png,image/webp"
	defaultAttachmentTypes  = "application/pdf,application/zip,application/x-rar-compressed"
	defaultCORSOrigins      = "http://localhost:5173,http://localhost:5174"
	defaultLogLevel         = "INFO"
	defaultLogFile          = "logs/app.log"
	defaultLogMaxBytesMB    = 100.0
	defaultKafkaTopic       = "catalog.events"
	defaultRelayBatchSize   = 100
	defaultRelayInterval    = 2 * time.Second
	defaultTelegramContact  = "https://t.me/support"
	storageDriverGCS        = "gcs"
	storageDriverLocal      = "local"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server  ServerConfig
	Spanner SpannerConfig
	Auth    AuthConfig
	Storage StorageConfig
	Log     LogConfig
	CORS    CORSConfig
	Kafka   KafkaConfig
	// ContactTelegramLink seeds the editable setting of the same name.
	ContactTelegramLink string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Addr is the listen address derived from Port.
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

type SpannerConfig struct {
	Database string
}

// AuthConfig holds the single admin account and token parameters.
type AuthConfig struct {
	AdminLogin        string
	AdminPassword     string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
	LoginPerMinute    int
}

// StorageConfig selects the file store and seeds the upload limits.
type StorageConfig struct {
	Driver                 string
	Path                   string
	Bucket                 string
	MaxFileSizeMB          float64
	AllowedImageTypes      string
	AllowedAttachmentTypes string
}

type LogConfig struct {
	Level      string
	File       string
	MaxBytesMB float64
}

type CORSConfig struct {
	Origins []string
}

// KafkaConfig configures the outbox relay.
type KafkaConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	PollInterval time.Duration
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the .env file and the environment.
// Precedence: explicit env map, then process environment, then .env.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}

	cfg := Config{
		Server: ServerConfig{
			Port:            stringWithDefault(lookup, "API_PORT", defaultPort),
			ReadTimeout:     durationWithDefault(lookup, "API_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    durationWithDefault(lookup, "API_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     durationWithDefault(lookup, "API_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout: durationWithDefault(lookup, "API_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Spanner: SpannerConfig{
			Database: stringWithDefault(lookup, "SPANNER_DATABASE", defaultSpannerDatabase),
		},
		Auth: AuthConfig{
			AdminLogin:        stringWithDefault(lookup, "ADMIN_LOGIN", defaultAdminLogin),
			AdminPassword:     stringWithDefault(lookup, "ADMIN_PASSWORD", ""),
			AdminPasswordHash: stringWithDefault(lookup, "ADMIN_PASSWORD_HASH", ""),
			JWTSecret:         stringWithDefault(lookup, "JWT_SECRET", defaultJWTSecret),
			TokenTTL:          time.Duration(intWithDefault(lookup, "JWT_EXPIRE_MINUTES", int(defaultTokenTTL/time.Minute))) * time.Minute,
			LoginPerMinute:    intWithDefault(lookup, "LOGIN_RATE_PER_MINUTE", defaultLoginPerMinute),
		},
		Storage: StorageConfig{
			Driver:                 strings.ToLower(stringWithDefault(lookup, "STORAGE_DRIVER", defaultStorageDriver)),
			Path:                   stringWithDefault(lookup, "STORAGE_PATH", defaultStoragePath),
			Bucket:                 stringWithDefault(lookup, "STORAGE_BUCKET", ""),
			MaxFileSizeMB:          floatWithDefault(lookup, "STORAGE_MAX_FILE_SIZE_MB", defaultMaxFileSizeMB),
			AllowedImageTypes:      stringWithDefault(lookup, "STORAGE_ALLOWED_IMAGE_TYPES", defaultImageTypes),
			AllowedAttachmentTypes: stringWithDefault(lookup, "STORAGE_ALLOWED_ATTACHMENT_TYPES", defaultAttachmentTypes),
		},
		Log: LogConfig{
			Level:      stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel),
			File:       stringWithDefault(lookup, "LOG_FILE", defaultLogFile),
			MaxBytesMB: floatWithDefault(lookup, "LOG_MAX_BYTES_MB", defaultLogMaxBytesMB),
		},
		CORS: CORSConfig{
			Origins: csvWithDefault(lookup, "CORS_ORIGINS", defaultCORSOrigins),
		},
		Kafka: KafkaConfig{
			Brokers:      csvWithDefault(lookup, "KAFKA_BROKERS", ""),
			Topic:        stringWithDefault(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
			BatchSize:    intWithDefault(lookup, "RELAY_BATCH_SIZE", defaultRelayBatchSize),
			PollInterval: durationWithDefault(lookup, "RELAY_POLL_INTERVAL", defaultRelayInterval),
		},
		ContactTelegramLink: stringWithDefault(lookup, "CONTACT_TELEGRAM_LINK", defaultTelegramContact),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var fields []string
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		fields = append(fields, "API_PORT")
	}
	if strings.TrimSpace(c.Spanner.Database) == "" {
		fields = append(fields, "SPANNER_DATABASE")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		fields = append(fields, "JWT_SECRET")
	}
	if c.Auth.TokenTTL <= 0 {
		fields = append(fields, "JWT_EXPIRE_MINUTES")
	}
	if c.Auth.LoginPerMinute <= 0 {
		fields = append(fields, "LOGIN_RATE_PER_MINUTE")
	}
	switch c.Storage.Driver {
	case storageDriverLocal:
		if strings.TrimSpace(c.Storage.Path) == "" {
			fields = append(fields, "STORAGE_PATH")
		}
	case storageDriverGCS:
		if strings.TrimSpace(c.Storage.Bucket) == "" {
			fields = append(fields, "STORAGE_BUCKET")
		}
	default:
		fields = append(fields, "STORAGE_DRIVER")
	}
	if c.Storage.MaxFileSizeMB <= 0 {
		fields = append(fields, "STORAGE_MAX_FILE_SIZE_MB")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return values, nil
}

type lookupFunc func(string) (string, bool)

func stringWithDefault(lookup lookupFunc, key, def string) string {
	if value, ok := lookup(key); ok {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return def
}

func intWithDefault(lookup lookupFunc, key string, def int) int {
	value, ok := lookup(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func floatWithDefault(lookup lookupFunc, key string, def float64) float64 {
	value, ok := lookup(key)
	if !ok {
		return def
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return def
	}
	return parsed
}

func durationWithDefault(lookup lookupFunc, key string, def time.Duration) time.Duration {
	value, ok := lookup(key)
	if !ok {
		return def
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return parsed
}

func csvWithDefault(lookup lookupFunc, key, def string) []string {
	value := stringWithDefault(lookup, key, def)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
