package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvServiceDomain = "MICROCMS_SERVICE_DOMAIN"
	EnvAPIKey        = "MICROCMS_API_KEY"
)

type (
	Config struct {
		CMS
		HTTP
		Global
		Site
		Migration
		Refresh
		Log
	}

	CMS struct {
		ServiceDomain string
		APIKey        string
		BaseURL       string // Overrides the URL derived from ServiceDomain
		Timeout       time.Duration
		MaxRetries    int
	}
	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Site struct {
		URL string
	}
	Migration struct {
		ImagesDir   string
		Parallelism int // Concurrent collection writes; uploads stay sequential
	}
	Refresh struct {
		Schedule string // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Log struct {
		Env   string // "production" switches to JSON output
		Level string
	}
)

// ConfigError reports required environment values that are not set.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	names := strings.Join(e.Missing, ", ")
	return fmt.Sprintf("環境変数 %s を設定してください。 (required environment variables not set: %s)", names, names)
}

// Endpoint returns the content API root, e.g. https://example.microcms.io/api/v1.
func (c CMS) Endpoint() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("https://%s.microcms.io/api/v1", c.ServiceDomain)
}

// Validate checks the values every networked command needs. It must run
// before the first request is made.
func (c *Config) Validate() error {
	var missing []string
	if c.CMS.ServiceDomain == "" && c.CMS.BaseURL == "" {
		missing = append(missing, EnvServiceDomain)
	}
	if c.CMS.APIKey == "" {
		missing = append(missing, EnvAPIKey)
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// Load reads envFile (when it exists) into the process environment and
// then builds the configuration from it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return NewConfig(), nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("cms_base_url", "")
	v.SetDefault("cms_timeout", "30s")
	v.SetDefault("cms_max_retries", 3)
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("site_url", DefaultSiteURL)
	v.SetDefault("images_dir", DefaultImagesDir)
	v.SetDefault("migrate_parallelism", 1)
	v.SetDefault("content_refresh_schedule", "*/15 * * * *")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")

	return &Config{
		CMS: CMS{
			ServiceDomain: v.GetString(EnvServiceDomain),
			APIKey:        v.GetString(EnvAPIKey),
			BaseURL:       v.GetString("CMS_BASE_URL"),
			Timeout:       v.GetDuration("CMS_TIMEOUT"),
			MaxRetries:    v.GetInt("CMS_MAX_RETRIES"),
		},
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Site: Site{
			URL: strings.TrimRight(v.GetString("SITE_URL"), "/"),
		},
		Migration: Migration{
			ImagesDir:   v.GetString("IMAGES_DIR"),
			Parallelism: v.GetInt("MIGRATE_PARALLELISM"),
		},
		Refresh: Refresh{
			Schedule: v.GetString("CONTENT_REFRESH_SCHEDULE"),
		},
		Log: Log{
			Env:   v.GetString("APP_ENV"),
			Level: v.GetString("LOG_LEVEL"),
		},
	}
}
