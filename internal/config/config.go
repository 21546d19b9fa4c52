package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	HSN       HSNConfig
	S3        S3Config
	Archive   ArchiveConfig
	Log       LogConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	PDF       PDFConfig
	Client    ClientConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the HSN master.
type DBConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// HSNConfig controls whether line items are checked against the HSN master.
type HSNConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	LoadTimeoutSec int  `mapstructure:"load_timeout_secs"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// ArchiveConfig controls archiving of generated invoice PDFs to S3.
type ArchiveConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Prefix  string `mapstructure:"prefix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig limits PDF and export requests per client IP.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"rps"`
	Burst             int     `mapstructure:"burst"`
}

// PDFConfig holds invoice rendering settings.
type PDFConfig struct {
	Title       string `mapstructure:"title"`
	FontFamily  string `mapstructure:"font_family"`
	CompanyLogo string `mapstructure:"company_logo"`
}

// ClientConfig configures the khata CLI's API client.
type ClientConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	CredentialsFile string        `mapstructure:"credentials_file"`
}

// Load reads configuration from environment variables with the EKTHAA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EKTHAA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.enabled", false)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "ekthaa")
	v.SetDefault("db.password", "ekthaa_secret")
	v.SetDefault("db.name", "ekthaa_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	v.SetDefault("hsn.enabled", true)
	v.SetDefault("hsn.load_timeout_secs", 30)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "ekthaa-invoices")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	v.SetDefault("archive.enabled", false)
	v.SetDefault("archive.prefix", "invoices")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (vite dev server and CRA origins)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 2)
	v.SetDefault("rate_limit.burst", 5)

	v.SetDefault("pdf.title", "TAX INVOICE")
	v.SetDefault("pdf.font_family", "Arial")
	v.SetDefault("pdf.company_logo", "")

	v.SetDefault("client.base_url", "http://localhost:5000/api")
	v.SetDefault("client.timeout", "30s")
	v.SetDefault("client.credentials_file", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "EKTHAA_SERVER_PORT",
		"server.read_timeout":     "EKTHAA_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "EKTHAA_SERVER_WRITE_TIMEOUT",
		"server.environment":      "EKTHAA_SERVER_ENVIRONMENT",
		"db.enabled":              "EKTHAA_DB_ENABLED",
		"db.host":                 "EKTHAA_DB_HOST",
		"db.port":                 "EKTHAA_DB_PORT",
		"db.user":                 "EKTHAA_DB_USER",
		"db.password":             "EKTHAA_DB_PASSWORD",
		"db.name":                 "EKTHAA_DB_NAME",
		"db.sslmode":              "EKTHAA_DB_SSLMODE",
		"db.max_open":             "EKTHAA_DB_MAX_OPEN",
		"db.max_idle":             "EKTHAA_DB_MAX_IDLE",
		"hsn.enabled":             "EKTHAA_HSN_ENABLED",
		"hsn.load_timeout_secs":   "EKTHAA_HSN_LOAD_TIMEOUT_SECS",
		"s3.region":               "EKTHAA_S3_REGION",
		"s3.bucket":               "EKTHAA_S3_BUCKET",
		"s3.endpoint":             "EKTHAA_S3_ENDPOINT",
		"s3.access_key":           "EKTHAA_S3_ACCESS_KEY",
		"s3.secret_key":           "EKTHAA_S3_SECRET_KEY",
		"s3.presign_expiry":       "EKTHAA_S3_PRESIGN_EXPIRY",
		"archive.enabled":         "EKTHAA_ARCHIVE_ENABLED",
		"archive.prefix":          "EKTHAA_ARCHIVE_PREFIX",
		"log.level":               "EKTHAA_LOG_LEVEL",
		"log.format":              "EKTHAA_LOG_FORMAT",
		"cors.allowed_origins":    "EKTHAA_CORS_ALLOWED_ORIGINS",
		"rate_limit.enabled":      "EKTHAA_RATE_LIMIT_ENABLED",
		"rate_limit.rps":          "EKTHAA_RATE_LIMIT_RPS",
		"rate_limit.burst":        "EKTHAA_RATE_LIMIT_BURST",
		"pdf.title":               "EKTHAA_PDF_TITLE",
		"pdf.font_family":         "EKTHAA_PDF_FONT_FAMILY",
		"pdf.company_logo":        "EKTHAA_PDF_COMPANY_LOGO",
		"client.base_url":         "EKTHAA_CLIENT_BASE_URL",
		"client.timeout":          "EKTHAA_CLIENT_TIMEOUT",
		"client.credentials_file": "EKTHAA_CLIENT_CREDENTIALS_FILE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if EKTHAA_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("EKTHAA_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Enabled:  v.GetBool("db.enabled"),
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.HSN = HSNConfig{
		Enabled:        v.GetBool("hsn.enabled"),
		LoadTimeoutSec: v.GetInt("hsn.load_timeout_secs"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Archive = ArchiveConfig{
		Enabled: v.GetBool("archive.enabled"),
		Prefix:  strings.Trim(v.GetString("archive.prefix"), "/"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.RateLimit = RateLimitConfig{
		Enabled:           v.GetBool("rate_limit.enabled"),
		RequestsPerSecond: v.GetFloat64("rate_limit.rps"),
		Burst:             v.GetInt("rate_limit.burst"),
	}
	cfg.PDF = PDFConfig{
		Title:       v.GetString("pdf.title"),
		FontFamily:  v.GetString("pdf.font_family"),
		CompanyLogo: v.GetString("pdf.company_logo"),
	}
	cfg.Client = ClientConfig{
		BaseURL:         strings.TrimRight(v.GetString("client.base_url"), "/"),
		Timeout:         v.GetDuration("client.timeout"),
		CredentialsFile: v.GetString("client.credentials_file"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("config: rate_limit rps and burst must be positive when enabled")
	}
	if c.Archive.Enabled && c.S3.Bucket == "" {
		return fmt.Errorf("config: archive enabled but s3.bucket is empty")
	}
	return nil
}

// splitList parses a comma-separated value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
