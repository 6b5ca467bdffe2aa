package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cinefeel/cinefeel-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config application configuration. Loaded once at startup and treated as
// read-only afterwards.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	TMDB     TMDBConfig     `yaml:"tmdb"`
	CORS     CORSConfig     `yaml:"cors"`
}

// AppConfig application level settings
type AppConfig struct {
	Name string `yaml:"name"`
	Env  string `yaml:"env" validate:"required,oneof=local development dev test production"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port" validate:"required,min=1,max=65535"`
	PublicHost string `yaml:"public_host"`
}

// DatabaseConfig database connection settings
type DatabaseConfig struct {
	Driver          string `yaml:"driver" validate:"required,oneof=mysql postgres sqlite"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name" validate:"required"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

// RedisConfig redis connection settings
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// JWTConfig session token settings
type JWTConfig struct {
	Secret    string `yaml:"secret" validate:"required"`
	ExpiresIn int    `yaml:"expires_in" validate:"min=0"` // seconds, also the cookie Max-Age
}

// TMDBConfig movie catalog settings
type TMDBConfig struct {
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url" validate:"omitempty,url"`
	Language string `yaml:"language"`
	Timeout  int    `yaml:"timeout"` // seconds
}

// CORSConfig CORS settings
type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

var validate = validator.New()

// Load reads the YAML file at path, applies environment overrides and
// validates the result. A missing file is not an error; environment
// variables alone can configure the service.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		logger.Warn("config file %s not found, using defaults and environment", path)
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		App:    AppConfig{Name: "cinefeel", Env: "local"},
		Server: ServerConfig{Host: "0.0.0.0", Port: 8080},
		Database: DatabaseConfig{
			Driver:          "mysql",
			Host:            "127.0.0.1",
			Port:            3306,
			Name:            "cinefeel",
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: 3600,
		},
		Redis: RedisConfig{Host: "127.0.0.1", Port: 6379, PoolSize: 10},
		JWT:   JWTConfig{ExpiresIn: 7 * 24 * 3600},
		TMDB: TMDBConfig{
			BaseURL:  "https://api.themoviedb.org/3",
			Language: "ko-KR",
			Timeout:  10,
		},
	}
}

func applyEnv(cfg *Config) {
	setString(&cfg.App.Env, "APP_ENV")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.PublicHost, "SERVER_PUBLIC_HOST")
	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if v := os.Getenv("REDIS_ENABLED"); v != "" {
		cfg.Redis.Enabled, _ = strconv.ParseBool(v)
	}
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.TMDB.APIKey, "TMDB_API_KEY")
	setString(&cfg.TMDB.Language, "TMDB_LANGUAGE")
	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// IsDevelopment reports whether the service runs in a local/dev mode
func (c *Config) IsDevelopment() bool {
	switch c.App.Env {
	case "local", "development", "dev":
		return true
	}
	return false
}

// BaseURL returns the public base URL. The protocol follows the environment.
func (c *Config) BaseURL() string {
	scheme := "http"
	if c.IsProduction() {
		scheme = "https"
	}
	host := c.Server.PublicHost
	if host == "" {
		host = fmt.Sprintf("localhost:%d", c.Server.Port)
	}
	return scheme + "://" + host
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// AllowOrigins returns the configured CORS origins (frontend dev server by default)
func (c *Config) AllowOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORS.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

// GetDSN builds the driver specific DSN
func (d DatabaseConfig) GetDSN() string {
	switch d.Driver {
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, d.Port, d.User, d.Password, d.Name)
	case "sqlite":
		return d.Name
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Name)
	}
}

// ConnMaxLifetimeDuration returns ConnMaxLifetime as a duration
func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// ExpiresInDuration returns the session lifetime
func (j JWTConfig) ExpiresInDuration() time.Duration {
	return time.Duration(j.ExpiresIn) * time.Second
}

// TimeoutDuration returns the upstream request timeout
func (t TMDBConfig) TimeoutDuration() time.Duration {
	return time.Duration(t.Timeout) * time.Second
}

// LogResolved prints the effective configuration without secrets
func LogResolved(cfg *Config) {
	logger.Info("config: env=%s addr=%s base_url=%s db=%s@%s:%d/%s redis=%v tmdb_key=%v",
		cfg.App.Env, cfg.Addr(), cfg.BaseURL(),
		cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port, cfg.Database.Name,
		cfg.Redis.Enabled, cfg.TMDB.APIKey != "")
}
