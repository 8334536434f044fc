package config

import (
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

const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	App        AppConfig        `koanf:"app"`
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Auth       AuthConfig       `koanf:"auth"`
	Logging    LoggingConfig    `koanf:"logging"`
	CORS       CORSConfig       `koanf:"cors"`
	Document   DocumentConfig   `koanf:"document"`
	Pagination PaginationConfig `koanf:"pagination"`
}

type AppConfig struct {
	Env string `koanf:"env"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	DSN string `koanf:"dsn"`
}

type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type DocumentConfig struct {
	// FontPath points to a TrueType font; empty means the embedded Go Regular font.
	FontPath string `koanf:"font_path"`
	Title    string `koanf:"title"`
}

type PaginationConfig struct {
	DefaultLimit int `koanf:"default_limit"`
	MaxLimit     int `koanf:"max_limit"`
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{Env: "dev"},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{DSN: "foodgram.db"},
		Auth: AuthConfig{
			JWTSecret: defaultJWTSecret,
			TokenTTL:  24 * time.Hour,
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		CORS:    CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Document: DocumentConfig{
			Title: "Shopping helper",
		},
		Pagination: PaginationConfig{DefaultLimit: 6, MaxLimit: 100},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (later wins).
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := splitCommaList(k, "cors.allowed_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func splitCommaList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok || s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	return nil
}

var envMappings = map[string]string{
	"app_env":                  "app.env",
	"env":                      "app.env",
	"server_host":              "server.host",
	"port":                     "server.port",
	"server_port":              "server.port",
	"server_read_timeout":      "server.read_timeout",
	"server_write_timeout":     "server.write_timeout",
	"database_url":             "database.dsn",
	"database_dsn":             "database.dsn",
	"jwt_secret":               "auth.jwt_secret",
	"jwt_ttl":                  "auth.token_ttl",
	"log_level":                "logging.level",
	"log_format":               "logging.format",
	"cors_allowed_origins":     "cors.allowed_origins",
	"document_font_path":       "document.font_path",
	"document_title":           "document.title",
	"pagination_default_limit": "pagination.default_limit",
	"pagination_max_limit":     "pagination.max_limit",
}

// envTransformFunc maps known environment variables to config keys. Anything
// else returns "" and is ignored by the provider.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
