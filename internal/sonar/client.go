package sonar

import (
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/httpclient"
)

const clientName = "sonar"

// Client wraps the SonarCloud Web API. Method contracts are typed; their
// transport behavior is intentionally left unimplemented.
type Client struct {
	rest    *resty.Client
	baseURL string
	logger  hclog.Logger
}

// NewClient builds a SonarCloud client. SonarCloud authenticates with a user
// token passed as the basic-auth username with an empty password.
func NewClient(endpoint config.Endpoint, token string, cfg *config.Config, logger hclog.Logger) (*Client, error) {
	baseURL := endpoint.BaseURL
	if baseURL == "" {
		baseURL = "https://sonarcloud.io"
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid sonar base URL %q: %w", baseURL, err)
	}
	if token == "" {
		return nil, fmt.Errorf("sonar token is empty")
	}

	rest := httpclient.InitializeRestyClient(logger, cfg)
	rest.
		SetBaseURL(baseURL).
		SetBasicAuth(token, "").
		SetHeader("Accept", "application/json")

	return &Client{
		rest:    rest,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}
