// Package config loads the application configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. A .env file, when present, is loaded into the
// environment before anything else.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the YAML config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/foodgram/config.yaml",
}

type AppConfig struct {
	Server     ServerConfig     `koanf:"server"`
	DB         DatabaseConfig   `koanf:"db"`
	Redis      RedisConfig      `koanf:"redis"`
	Cache      CacheConfig      `koanf:"cache"`
	JWT        JWTConfig        `koanf:"jwt"`
	Log        LogConfig        `koanf:"log"`
	Storage    StorageConfig    `koanf:"storage"`
	Pagination PaginationConfig `koanf:"pagination"`
	PDF        PDFConfig        `koanf:"pdf"`
}

type ServerConfig struct {
	Port         int           `koanf:"port"`
	Mode         string        `koanf:"mode"` // debug, release, test
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	FrontendURL  string        `koanf:"frontend_url"`
	BaseURL      string        `koanf:"base_url"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	User            string        `koanf:"user"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name"`
	SSLMode         string        `koanf:"sslmode"`
	TimeZone        string        `koanf:"timezone"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	SlowThreshold   time.Duration `koanf:"slow_threshold"`
}

// DSN builds the libpq connection string for the postgres driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s application_name=foodgram TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone,
	)
}

type RedisConfig struct {
	// URL in redis:// form. Empty disables Redis and the in-process cache is used.
	URL string `koanf:"url"`
}

type CacheConfig struct {
	TTL     time.Duration `koanf:"ttl"`
	LRUSize int           `koanf:"lru_size"`
}

type JWTConfig struct {
	Secret      string `koanf:"secret"`
	ExpireHours int    `koanf:"expire_hours"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, console
}

type StorageConfig struct {
	Driver      string `koanf:"driver"` // local, s3
	MediaRoot   string `koanf:"media_root"`
	MediaURL    string `koanf:"media_url"`
	S3Bucket    string `koanf:"s3_bucket"`
	S3Region    string `koanf:"s3_region"`
	S3Endpoint  string `koanf:"s3_endpoint"`
	S3Key       string `koanf:"s3_key"`
	S3Secret    string `koanf:"s3_secret"`
	S3PublicURL string `koanf:"s3_public_url"`
}

type PaginationConfig struct {
	PageSize    int `koanf:"page_size"`
	MaxPageSize int `koanf:"max_page_size"`
}

type PDFConfig struct {
	// FontPath points at a UTF-8 TrueType font; empty uses the built-in Helvetica.
	FontPath string `koanf:"font_path"`
}

func defaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:         8080,
			Mode:         "release",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
			FrontendURL:  "http://localhost:3000",
			BaseURL:      "http://localhost:8080",
		},
		DB: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			Name:            "foodgram",
			SSLMode:         "disable",
			TimeZone:        "UTC",
			MaxOpenConns:    50,
			MaxIdleConns:    10,
			ConnMaxLifetime: time.Hour,
			SlowThreshold:   500 * time.Millisecond,
		},
		Cache: CacheConfig{
			TTL:     30 * time.Minute,
			LRUSize: 1024,
		},
		JWT: JWTConfig{
			ExpireHours: 72,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: StorageConfig{
			Driver:    "local",
			MediaRoot: "media",
			MediaURL:  "/media/",
		},
		Pagination: PaginationConfig{
			PageSize:    10,
			MaxPageSize: 100,
		},
	}
}

// envAliases maps environment variables onto config keys. Variables not
// listed here are ignored.
var envAliases = map[string]string{
	"PORT":                 "server.port",
	"GIN_MODE":             "server.mode",
	"SERVER_READ_TIMEOUT":  "server.read_timeout",
	"SERVER_WRITE_TIMEOUT": "server.write_timeout",
	"FRONTEND_URL":         "server.frontend_url",
	"BASE_URL":             "server.base_url",
	"DB_HOST":              "db.host",
	"DB_PORT":              "db.port",
	"DB_USER":              "db.user",
	"DB_PASSWORD":          "db.password",
	"DB_NAME":              "db.name",
	"DB_SSLMODE":           "db.sslmode",
	"DB_TIMEZONE":          "db.timezone",
	"DB_MAX_OPEN_CONNS":    "db.max_open_conns",
	"DB_MAX_IDLE_CONNS":    "db.max_idle_conns",
	"REDIS_URL":            "redis.url",
	"CACHE_TTL":            "cache.ttl",
	"CACHE_LRU_SIZE":       "cache.lru_size",
	"JWT_SECRET_KEY":       "jwt.secret",
	"JWT_SECRET":           "jwt.secret",
	"JWT_EXPIRE_HOURS":     "jwt.expire_hours",
	"LOG_LEVEL":            "log.level",
	"LOG_FORMAT":           "log.format",
	"STORAGE_DRIVER":       "storage.driver",
	"MEDIA_ROOT":           "storage.media_root",
	"MEDIA_URL":            "storage.media_url",
	"S3_BUCKET":            "storage.s3_bucket",
	"S3_REGION":            "storage.s3_region",
	"S3_ENDPOINT":          "storage.s3_endpoint",
	"S3_ACCESS_KEY":        "storage.s3_key",
	"S3_SECRET_KEY":        "storage.s3_secret",
	"S3_PUBLIC_URL":        "storage.s3_public_url",
	"PAGE_SIZE":            "pagination.page_size",
	"MAX_PAGE_SIZE":        "pagination.max_page_size",
	"PDF_FONT_PATH":        "pdf.font_path",
}

// Load builds the configuration. An explicit path wins over CONFIG_PATH and
// the default search paths; a missing file is not an error.
func Load(path string) (*AppConfig, error) {
	// .env is optional, the environment may already be populated
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if configPath := resolvePath(path); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envAliases[strings.ToUpper(s)]
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &AppConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolvePath(path string) string {
	if path != "" {
		return existing(path)
	}
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		return existing(p)
	}
	for _, p := range DefaultConfigPaths {
		if existing(p) != "" {
			return p
		}
	}
	return ""
}

func existing(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Validate checks the settings that would otherwise fail late at runtime.
func (c *AppConfig) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range", c.Server.Port))
	}
	if c.JWT.Secret == "" && c.Server.Mode == "release" {
		errs = append(errs, errors.New("jwt.secret is required in release mode"))
	}
	if c.JWT.ExpireHours <= 0 {
		errs = append(errs, errors.New("jwt.expire_hours must be positive"))
	}
	switch c.Storage.Driver {
	case "local":
	case "s3":
		if c.Storage.S3Bucket == "" {
			errs = append(errs, errors.New("storage.s3_bucket is required for the s3 driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}
	if c.Pagination.PageSize <= 0 {
		errs = append(errs, errors.New("pagination.page_size must be positive"))
	}
	if c.Pagination.MaxPageSize < c.Pagination.PageSize {
		errs = append(errs, errors.New("pagination.max_page_size must not be below page_size"))
	}

	return errors.Join(errs...)
}
