package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv(EnvServiceDomain, "")
	t.Setenv(EnvAPIKey, "")

	cfg := NewConfig()

	assert.Equal(t, int32(8188), cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 30*time.Second, cfg.CMS.Timeout)
	assert.Equal(t, 3, cfg.CMS.MaxRetries)
	assert.Equal(t, DefaultSiteURL, cfg.Site.URL)
	assert.Equal(t, DefaultImagesDir, cfg.Migration.ImagesDir)
	assert.Equal(t, 1, cfg.Migration.Parallelism)
	assert.Equal(t, "*/15 * * * *", cfg.Refresh.Schedule)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv(EnvServiceDomain, "gion")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv("CMS_TIMEOUT", "5s")
	t.Setenv("MIGRATE_PARALLELISM", "4")
	t.Setenv("SITE_URL", "https://staging.1129kyoto.jp/")

	cfg := NewConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gion", cfg.CMS.ServiceDomain)
	assert.Equal(t, "secret", cfg.CMS.APIKey)
	assert.Equal(t, 5*time.Second, cfg.CMS.Timeout)
	assert.Equal(t, 4, cfg.Migration.Parallelism)
	assert.Equal(t, "https://staging.1129kyoto.jp", cfg.Site.URL)
	assert.Equal(t, "https://gion.microcms.io/api/v1", cfg.CMS.Endpoint())
}

func TestValidate_MissingValues(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{EnvServiceDomain, EnvAPIKey}, cfgErr.Missing)
	assert.Contains(t, err.Error(), "MICROCMS_SERVICE_DOMAIN, MICROCMS_API_KEY")
}

func TestValidate_BaseURLReplacesDomain(t *testing.T) {
	cfg := &Config{CMS: CMS{BaseURL: "http://127.0.0.1:9999/api/v1/", APIKey: "k"}}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://127.0.0.1:9999/api/v1", cfg.CMS.Endpoint())
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv(EnvServiceDomain, "")
	t.Setenv(EnvAPIKey, "")
	os.Unsetenv(EnvServiceDomain)
	os.Unsetenv(EnvAPIKey)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("MICROCMS_SERVICE_DOMAIN=fromfile\nMICROCMS_API_KEY=filekey\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.CMS.ServiceDomain)
	assert.Equal(t, "filekey", cfg.CMS.APIKey)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}
