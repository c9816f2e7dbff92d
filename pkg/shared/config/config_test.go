package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "no-such-config.yml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `
logger:
  level: debug
analysis:
  coverage_threshold: 65.5
  custom_patterns:
    - name: internal_url
      pattern: "corp\\.example\\.com"
      severity: warning
      category: security
      message: "internal hostname in source"
endpoints:
  jira:
    base_url: https://jira.example.com
    username: bot
    token_env: JIRA_TOKEN
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 65.5, cfg.Analysis.CoverageThreshold)
	require.Len(t, cfg.Analysis.CustomPatterns, 1)
	assert.Equal(t, "internal_url", cfg.Analysis.CustomPatterns[0]["name"])
	assert.Equal(t, "https://jira.example.com", cfg.Endpoints.Jira.BaseURL)
	assert.Equal(t, "JIRA_TOKEN", cfg.Endpoints.Jira.TokenEnv)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("logger: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestEndpointToken(t *testing.T) {
	t.Setenv("AGENTKIT_TEST_TOKEN", "s3cret")

	assert.Equal(t, "s3cret", Endpoint{TokenEnv: "AGENTKIT_TEST_TOKEN"}.Token())
	assert.Equal(t, "", Endpoint{}.Token())
}

func TestValidateConfig(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "zero config is valid", mutate: func(c *Config) {}},
		{name: "known log level", mutate: func(c *Config) { c.Logger.Level = "INFO" }},
		{name: "unknown log level", mutate: func(c *Config) { c.Logger.Level = "verbose" }, wantErr: true},
		{name: "threshold in range", mutate: func(c *Config) { c.Analysis.CoverageThreshold = 100 }},
		{name: "threshold negative", mutate: func(c *Config) { c.Analysis.CoverageThreshold = -1 }, wantErr: true},
		{name: "threshold above 100", mutate: func(c *Config) { c.Analysis.CoverageThreshold = 100.1 }, wantErr: true},
		{name: "https endpoint", mutate: func(c *Config) { c.Endpoints.Sonar.BaseURL = "https://sonarcloud.io" }},
		{name: "non-http endpoint", mutate: func(c *Config) { c.Endpoints.Figma.BaseURL = "ftp://figma" }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			tc.mutate(cfg)
			err := ValidateConfig(cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	assert.Error(t, ValidateConfig(nil))
}
