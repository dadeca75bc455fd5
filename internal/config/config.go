package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DevPassword  = "admin123"
	DevAuthToken = "dev-token"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App         AppConfig
	Storage     StorageConfig
	RemoteStore RemoteStoreConfig
	Cache       CacheConfig
	Auth        AuthConfig
	Contact     ContactConfig
	Features    FeatureConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

// StorageConfig configures the file-backed content strategy.
type StorageConfig struct {
	DataFile string // data/cms-data.json
}

// RemoteStoreConfig configures the single-row remote content store.
// Endpoint is a Postgres connection URL without credentials, AccessKey is the password.
type RemoteStoreConfig struct {
	Endpoint          string
	AccessKey         string
	Table             string
	MaxConns          int
	MinConns          int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	ConnectTimeout    time.Duration
	QueryTimeout      time.Duration
}

// Configured reports whether both endpoint and access key are present.
// This is the only signal used to pick the remote strategy over the file one.
func (r RemoteStoreConfig) Configured() bool {
	return strings.TrimSpace(r.Endpoint) != "" && strings.TrimSpace(r.AccessKey) != ""
}

type CacheConfig struct {
	Driver        string // none, memory, redis
	RedisHost     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

type AuthConfig struct {
	Password     string // plain text or bcrypt hash
	Token        string // static session token, also the jwt signing secret in jwt mode
	Mode         string // static, jwt
	CookieName   string
	CookieMaxAge time.Duration
	SecureCookie bool
}

type ContactConfig struct {
	BookingEmail string
	FromEmail    string
}

type FeatureConfig struct {
	LinkEditing bool
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Clinic CMS"),
			Environment: env,
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			DataFile: getEnv("CMS_DATA_FILE", "data/cms-data.json"),
		},
		RemoteStore: RemoteStoreConfig{
			Endpoint:          getEnv("REMOTE_STORE_URL", ""),
			AccessKey:         getEnv("REMOTE_STORE_KEY", ""),
			Table:             getEnv("REMOTE_STORE_TABLE", "cms_data"),
			MaxConns:          getEnvInt("REMOTE_STORE_MAX_CONNS", 4),
			MinConns:          getEnvInt("REMOTE_STORE_MIN_CONNS", 0),
			MaxConnLifetime:   getEnvDuration("REMOTE_STORE_MAX_CONN_LIFETIME", 5*time.Minute),
			MaxConnIdleTime:   getEnvDuration("REMOTE_STORE_MAX_CONN_IDLE_TIME", time.Minute),
			HealthCheckPeriod: getEnvDuration("REMOTE_STORE_HEALTH_CHECK_PERIOD", time.Minute),
			MaxRetries:        getEnvInt("REMOTE_STORE_MAX_RETRIES", 3),
			RetryDelay:        getEnvDuration("REMOTE_STORE_RETRY_DELAY", time.Second),
			ConnectTimeout:    getEnvDuration("REMOTE_STORE_CONNECT_TIMEOUT", 10*time.Second),
			QueryTimeout:      getEnvDuration("REMOTE_STORE_QUERY_TIMEOUT", 5*time.Second),
		},
		Cache: CacheConfig{
			Driver:        getEnv("CACHE_DRIVER", "none"),
			RedisHost:     getEnv("REDIS_HOST", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			TTL:           getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Password:     getEnv("CMS_PASSWORD", DevPassword),
			Token:        getEnv("CMS_AUTH_TOKEN", DevAuthToken),
			Mode:         getEnv("CMS_AUTH_MODE", "static"),
			CookieName:   getEnv("CMS_COOKIE_NAME", "cms-auth"),
			CookieMaxAge: getEnvDuration("CMS_COOKIE_MAX_AGE", 7*24*time.Hour),
			SecureCookie: env == "production",
		},
		Contact: ContactConfig{
			BookingEmail: getEnv("APPOINTMENT_EMAIL", ""),
			FromEmail:    getEnv("RESEND_FROM_EMAIL", "onboarding@resend.dev"),
		},
		Features: FeatureConfig{
			LinkEditing: getEnvBool("ENABLE_LINK_EDITING", false),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.Auth.Mode {
	case "static", "jwt":
	default:
		return fmt.Errorf("CMS_AUTH_MODE must be static or jwt, got %q", c.Auth.Mode)
	}

	switch c.Cache.Driver {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("CACHE_DRIVER must be none, memory or redis, got %q", c.Cache.Driver)
	}

	if c.Auth.Token == "" {
		return fmt.Errorf("CMS_AUTH_TOKEN must not be empty")
	}

	if c.App.Environment == "production" {
		if c.Auth.Password == DevPassword {
			return fmt.Errorf("CMS_PASSWORD must be set in production")
		}
		if c.Auth.Token == DevAuthToken {
			return fmt.Errorf("CMS_AUTH_TOKEN must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
