// Package config loads service settings from an optional env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecretKey is the placeholder secret shipped in sample env files.
// Load refuses to start with it.
const DefaultJWTSecretKey = "my_super_secret_key"

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY must be set to a non-default value")
	ErrNoTokenExpiry    = errors.New("JWT_EXP_SECOND must be positive when ADMIN_ACCOUNT_IDS is set")
)

// Config holds every setting the service reads at startup.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	UserCacheTTL      time.Duration

	KafkaBrokers            []string
	KafkaTopicTransactions  string
	KafkaTopicContacts      string
	KafkaTopicPasswordReset string

	JWTSecretKey string
	JWTExp       time.Duration

	CookieSecure   bool
	CookieDomain   string
	CookieSameSite http.SameSite

	AdminAccountIDs []string

	PasswordResetEnabled bool
	PasswordResetKeyExp  time.Duration
}

// PostgresDSN builds the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// Load reads the env file at path, if present, and then the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.UserCacheTTL, err = getSeconds("REDIS_USER_CACHE_TTL_SECOND", 60); err != nil {
		return nil, err
	}

	// Kafka config
	cfg.KafkaBrokers = getList("KAFKA_BROKERS")
	cfg.KafkaTopicTransactions = getEnv("KAFKA_TOPIC_TRANSACTIONS", "transactions")
	cfg.KafkaTopicContacts = getEnv("KAFKA_TOPIC_CONTACTS", "contacts")
	cfg.KafkaTopicPasswordReset = getEnv("KAFKA_TOPIC_PASSWORD_RESET", "password-reset")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	if cfg.JWTSecretKey == "" || cfg.JWTSecretKey == DefaultJWTSecretKey {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", 86400); err != nil {
		return nil, err
	}

	// Cookie config
	if cfg.CookieSecure, err = getBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	cfg.CookieDomain = getEnv("COOKIE_DOMAIN", "")
	if cfg.CookieSameSite, err = parseSameSite(getEnv("COOKIE_SAMESITE", "lax")); err != nil {
		return nil, err
	}

	cfg.AdminAccountIDs = getList("ADMIN_ACCOUNT_IDS")
	// Roles are fixed in the token at issuance, so admin tokens must expire.
	if len(cfg.AdminAccountIDs) > 0 && cfg.JWTExp <= 0 {
		return nil, ErrNoTokenExpiry
	}

	// Password reset config
	if cfg.PasswordResetEnabled, err = getBool("PASSWORD_RESET_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.PasswordResetKeyExp, err = getSeconds("PASSWORD_RESET_KEY_EXP_SECOND", 3600); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getSeconds(key string, defaultValue int) (time.Duration, error) {
	v, err := getInt(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Second, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseSameSite(v string) (http.SameSite, error) {
	switch strings.ToLower(v) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	case "default":
		return http.SameSiteDefaultMode, nil
	}
	return 0, fmt.Errorf("COOKIE_SAMESITE: unknown mode %q", v)
}
