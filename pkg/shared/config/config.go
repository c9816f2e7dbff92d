package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Logger     Logger     `yaml:"logger"`
	HttpClient HttpClient `yaml:"http_client"`
	Analysis   Analysis   `yaml:"analysis"`
	Endpoints  Endpoints  `yaml:"endpoints"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type HttpClient struct {
	Debug            string          `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TlsClientConfig  TlsClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

type TlsClientConfig struct {
	Verify bool `yaml:"verify"`
}

type Proxy struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// Analysis holds tunables for the shared code-analysis helpers.
type Analysis struct {
	// CoverageThreshold is the line-coverage percentage below which a file
	// is reported as uncovered. Zero means use the built-in default.
	CoverageThreshold float64 `yaml:"coverage_threshold"`
	// CustomPatterns are extra pattern rules overlaid on the base table.
	// Each entry is decoded into a patterns.Rule by the caller.
	CustomPatterns []map[string]interface{} `yaml:"custom_patterns"`
}

// Endpoints configures the base URLs and credential env-var names for the
// wrapped third-party APIs. Tokens never live in the config file itself.
type Endpoints struct {
	Jira  Endpoint `yaml:"jira"`
	Figma Endpoint `yaml:"figma"`
	Sonar Endpoint `yaml:"sonar"`
	Azure Endpoint `yaml:"azure"`
}

type Endpoint struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	TokenEnv string `yaml:"token_env"`
}

// Token resolves the endpoint credential from the configured env variable.
func (e Endpoint) Token() string {
	if e.TokenEnv == "" {
		return ""
	}
	return os.Getenv(e.TokenEnv)
}

func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the YAML config at path. A missing file is not an error:
// the tools work with built-in defaults when no config is present.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}

	return config, nil
}
