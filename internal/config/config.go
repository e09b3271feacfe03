package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort          = "8080"
	defaultMode          = "development"
	defaultDatabaseURL   = "school.db"
	defaultAvatarsDir    = "./avatars"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultShutdownAfter = "10s"
)

type Config struct {
	Server struct {
		Port            string `yaml:"port"`
		Mode            string `yaml:"mode"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	} `yaml:"server"`

	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`

	Avatars struct {
		Dir string `yaml:"dir"`
	} `yaml:"avatars"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

// Load builds the configuration from defaults, an optional YAML file at
// path and environment variables, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			raw, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	applyEnv(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.Server.Port = defaultPort
	cfg.Server.Mode = defaultMode
	cfg.Server.ShutdownTimeout = defaultShutdownAfter
	cfg.Database.URL = defaultDatabaseURL
	cfg.Avatars.Dir = defaultAvatarsDir
	cfg.Logging.Level = defaultLogLevel
	cfg.Logging.Format = defaultLogFormat
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = strings.TrimSpace(getEnv("SERVER_PORT", cfg.Server.Port))
	cfg.Server.Mode = strings.ToLower(strings.TrimSpace(getEnv("SERVER_MODE", cfg.Server.Mode)))
	cfg.Server.ShutdownTimeout = strings.TrimSpace(getEnv("SERVER_SHUTDOWN_TIMEOUT", cfg.Server.ShutdownTimeout))
	cfg.Database.URL = strings.TrimSpace(getEnv("DATABASE_URL", cfg.Database.URL))
	cfg.Avatars.Dir = strings.TrimSpace(getEnv("AVATARS_DIR", cfg.Avatars.Dir))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", cfg.Logging.Level)))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", cfg.Logging.Format)))

	// пример: CORS_ALLOWED_ORIGINS=https://app.com,https://admin.app.com
	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, o)
			}
		}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if cfg.Avatars.Dir == "" {
		return fmt.Errorf("AVATARS_DIR must not be empty")
	}
	if _, err := cfg.ShutdownTimeout(); err != nil {
		return err
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be one of: text, json")
	}
	if isProdLike(cfg.Server.Mode) && cfg.Logging.Format != "json" {
		return fmt.Errorf("in prod/release LOG_FORMAT must be json")
	}
	return nil
}

// ShutdownTimeout parses Server.ShutdownTimeout.
func (c *Config) ShutdownTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT value %q: %w", c.Server.ShutdownTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be > 0")
	}
	return d, nil
}

// IsProduction reports whether the server runs in a release-like mode.
func (c *Config) IsProduction() bool {
	return isProdLike(c.Server.Mode)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
