// Package config loads startup configuration from an optional YAML file
// with an environment-variable overlay. Configuration is read once at
// boot and never re-read.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2333
	defaultEnv        = "development"
	defaultDataDir    = "data"
)

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int      `yaml:"port" env:"PORT"`
	Env            string   `yaml:"env" env:"APP_ENV"`
	DSN            string   `yaml:"dsn" env:"DATABASE_DSN"`
	RedisURL       string   `yaml:"redis_url" env:"REDIS_URL"`
	DataDir        string   `yaml:"data_dir" env:"DATA_DIR"`
	JWTSecret      string   `yaml:"jwt_secret" env:"JWT_SECRET"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	RecoveryLogin  bool     `yaml:"recovery_login" env:"RECOVERY_LOGIN"`

	AI   AIConfig   `yaml:"ai"`
	Mail MailConfig `yaml:"mail"`
}

// AIConfig selects the copy-enhancement provider. An empty APIKey
// disables the feature.
type AIConfig struct {
	Provider string `yaml:"provider" env:"AI_PROVIDER"`
	APIKey   string `yaml:"api_key" env:"AI_API_KEY"`
	Endpoint string `yaml:"endpoint" env:"AI_ENDPOINT"`
	Model    string `yaml:"model" env:"AI_MODEL"`
}

// MailConfig configures the Resend sender. An empty APIKey disables
// outbound mail.
type MailConfig struct {
	APIKey string `yaml:"api_key" env:"RESEND_API_KEY"`
	From   string `yaml:"from" env:"MAIL_FROM"`
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:          defaultPort,
		Env:           defaultEnv,
		DataDir:       defaultDataDir,
		RecoveryLogin: true,
		AI: AIConfig{
			Provider: "openai",
		},
		Mail: MailConfig{
			From: "GigSpace <onboarding@resend.dev>",
		},
	}
}

// Load reads the YAML file at configPath, then overlays environment
// variables. The default config file may be absent; an explicitly
// requested one may not.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	explicit := path != "" && path != DefaultConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Zero-config boot falls back to defaults plus environment.
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.Env = normalizeEnv(cfg.Env)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	return &cfg, nil
}

func normalizeEnv(e string) string {
	switch strings.ToLower(strings.TrimSpace(e)) {
	case "production", "prod":
		return "production"
	default:
		return defaultEnv
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }

// UseFileStore reports whether persistence falls back to the local file
// store. Presence of a DSN selects the database store.
func (c *AppConfig) UseFileStore() bool { return strings.TrimSpace(c.DSN) == "" }
