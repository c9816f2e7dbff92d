package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"":      {},
	"trace": {},
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// ValidateConfig checks cross-field constraints the YAML decoder cannot express.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if _, ok := validLogLevels[strings.ToLower(cfg.Logger.Level)]; !ok {
		return fmt.Errorf("unknown logger level %q", cfg.Logger.Level)
	}

	if cfg.Analysis.CoverageThreshold < 0 || cfg.Analysis.CoverageThreshold > 100 {
		return fmt.Errorf("coverage_threshold %v is outside [0, 100]", cfg.Analysis.CoverageThreshold)
	}

	for _, ep := range []struct {
		name string
		ep   Endpoint
	}{
		{"jira", cfg.Endpoints.Jira},
		{"figma", cfg.Endpoints.Figma},
		{"sonar", cfg.Endpoints.Sonar},
		{"azure", cfg.Endpoints.Azure},
	} {
		if ep.ep.BaseURL != "" && !strings.HasPrefix(ep.ep.BaseURL, "http") {
			return fmt.Errorf("endpoint %q: base_url %q is not an http(s) URL", ep.name, ep.ep.BaseURL)
		}
	}

	return nil
}
