package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	AppName        string
	Env            string
	Port           int
	APIPrefix      string
	MigrateOnStart bool

	Database      DatabaseConfig
	Redis         RedisConfig
	JWT           JWTConfig
	PasswordReset PasswordResetConfig
	Mail          MailConfig
	RateLimit     RateLimitConfig
	Renewal       RenewalConfig
	Analytics     AnalyticsConfig
	CORS          CORSConfig
	Log           LogConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the libpq keyword/value connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the postgres:// form expected by the migration driver.
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	Issuer             string
	AccessExpiration   time.Duration
	RefreshExpiration  time.Duration
	RememberExpiration time.Duration
}

// PasswordResetConfig controls the forgot-password flow.
type PasswordResetConfig struct {
	TokenTTL time.Duration
	ResetURL string
}

// MailConfig configures outbound SMTP delivery.
type MailConfig struct {
	Enabled    bool
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	LoginURL   string
	Workers    int
	MaxRetries int

	// RatePerSecond caps deliveries to the relay; zero disables throttling.
	RatePerSecond float64
}

// RateLimitConfig bounds requests on credential endpoints.
type RateLimitConfig struct {
	Enabled        bool
	AuthLimit      int
	AuthWindow     time.Duration
	ResetLimit     int
	ResetWindow    time.Duration
	RegisterLimit  int
	RegisterWindow time.Duration
}

// RenewalConfig schedules the subscription renewal sweep.
type RenewalConfig struct {
	Enabled             bool
	Interval            time.Duration
	TrialWarning        time.Duration
	SubscriptionWarning time.Duration
}

// AnalyticsConfig governs caching for admin analytics endpoints.
type AnalyticsConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.AppName = v.GetString("APP_NAME")
	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.MigrateOnStart = v.GetBool("MIGRATE_ON_START")

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:             v.GetString("JWT_ACCESS_SECRET"),
		Issuer:             v.GetString("JWT_ISSUER"),
		AccessExpiration:   parseDuration(v.GetString("JWT_EXPIRES_IN"), 15*time.Minute),
		RefreshExpiration:  parseDuration(v.GetString("REFRESH_TOKEN_EXPIRATION"), 7*24*time.Hour),
		RememberExpiration: parseDuration(v.GetString("REMEMBER_ME_EXPIRATION"), 30*24*time.Hour),
	}

	cfg.PasswordReset = PasswordResetConfig{
		TokenTTL: parseDuration(v.GetString("PASSWORD_RESET_TTL"), 15*time.Minute),
		ResetURL: v.GetString("PASSWORD_RESET_URL"),
	}

	cfg.Mail = MailConfig{
		Enabled:    v.GetBool("MAIL_ENABLED"),
		Host:       v.GetString("SMTP_HOST"),
		Port:       v.GetInt("SMTP_PORT"),
		Username:   v.GetString("SMTP_USER"),
		Password:   v.GetString("SMTP_PASS"),
		From:       v.GetString("SMTP_FROM"),
		LoginURL:   v.GetString("APP_LOGIN_URL"),
		Workers:    v.GetInt("MAIL_WORKERS"),
		MaxRetries: v.GetInt("MAIL_MAX_RETRIES"),

		RatePerSecond: v.GetFloat64("MAIL_RATE_PER_SECOND"),
	}

	cfg.RateLimit = RateLimitConfig{
		Enabled:        v.GetBool("RATE_LIMIT_ENABLED"),
		AuthLimit:      v.GetInt("RATE_LIMIT_AUTH_MAX"),
		AuthWindow:     parseDuration(v.GetString("RATE_LIMIT_AUTH_WINDOW"), 15*time.Minute),
		ResetLimit:     v.GetInt("RATE_LIMIT_RESET_MAX"),
		ResetWindow:    parseDuration(v.GetString("RATE_LIMIT_RESET_WINDOW"), time.Hour),
		RegisterLimit:  v.GetInt("RATE_LIMIT_REGISTER_MAX"),
		RegisterWindow: parseDuration(v.GetString("RATE_LIMIT_REGISTER_WINDOW"), time.Hour),
	}

	cfg.Renewal = RenewalConfig{
		Enabled:             v.GetBool("ENABLE_RENEWAL_JOB"),
		Interval:            parseDuration(v.GetString("RENEWAL_INTERVAL"), 24*time.Hour),
		TrialWarning:        parseDuration(v.GetString("RENEWAL_TRIAL_WARNING"), 7*24*time.Hour),
		SubscriptionWarning: parseDuration(v.GetString("RENEWAL_SUBSCRIPTION_WARNING"), 3*24*time.Hour),
	}

	cfg.Analytics = AnalyticsConfig{
		CacheEnabled: v.GetBool("ANALYTICS_CACHE_ENABLED"),
		CacheTTL:     parseDuration(v.GetString("ANALYTICS_CACHE_TTL"), 5*time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	if cfg.Env == EnvProduction && cfg.JWT.Secret == defaultJWTSecret {
		return nil, errors.New("JWT_ACCESS_SECRET must be set in production")
	}

	return cfg, nil
}

const defaultJWTSecret = "dev_access_secret"

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "HRMS SaaS")
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("MIGRATE_ON_START", false)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "hrms_app")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "hrms")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 20)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ACCESS_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "hrms-saas-api")
	v.SetDefault("JWT_EXPIRES_IN", "15m")
	v.SetDefault("REFRESH_TOKEN_EXPIRATION", "168h")
	v.SetDefault("REMEMBER_ME_EXPIRATION", "720h")

	v.SetDefault("PASSWORD_RESET_TTL", "15m")
	v.SetDefault("PASSWORD_RESET_URL", "http://localhost:5173/reset-password")

	v.SetDefault("MAIL_ENABLED", false)
	v.SetDefault("SMTP_HOST", "localhost")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASS", "")
	v.SetDefault("SMTP_FROM", "HRMS <no-reply@hrms.local>")
	v.SetDefault("APP_LOGIN_URL", "http://localhost:5173/login")
	v.SetDefault("MAIL_WORKERS", 2)
	v.SetDefault("MAIL_MAX_RETRIES", 3)
	v.SetDefault("MAIL_RATE_PER_SECOND", 5)

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_AUTH_MAX", 5)
	v.SetDefault("RATE_LIMIT_AUTH_WINDOW", "15m")
	v.SetDefault("RATE_LIMIT_RESET_MAX", 3)
	v.SetDefault("RATE_LIMIT_RESET_WINDOW", "1h")
	v.SetDefault("RATE_LIMIT_REGISTER_MAX", 10)
	v.SetDefault("RATE_LIMIT_REGISTER_WINDOW", "1h")

	v.SetDefault("ENABLE_RENEWAL_JOB", false)
	v.SetDefault("RENEWAL_INTERVAL", "24h")
	v.SetDefault("RENEWAL_TRIAL_WARNING", "168h")
	v.SetDefault("RENEWAL_SUBSCRIPTION_WARNING", "72h")

	v.SetDefault("ANALYTICS_CACHE_ENABLED", true)
	v.SetDefault("ANALYTICS_CACHE_TTL", "5m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
