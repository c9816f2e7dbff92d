package figma

import (
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/httpclient"
)

const clientName = "figma"

// Client wraps the Figma REST API. Method contracts are typed; their
// transport behavior is intentionally left unimplemented.
type Client struct {
	rest    *resty.Client
	baseURL string
	logger  hclog.Logger
}

// NewClient builds a Figma client. Figma authenticates with a personal
// access token sent in the X-Figma-Token header.
func NewClient(endpoint config.Endpoint, token string, cfg *config.Config, logger hclog.Logger) (*Client, error) {
	baseURL := endpoint.BaseURL
	if baseURL == "" {
		baseURL = "https://api.figma.com"
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid figma base URL %q: %w", baseURL, err)
	}
	if token == "" {
		return nil, fmt.Errorf("figma token is empty")
	}

	rest := httpclient.InitializeRestyClient(logger, cfg)
	rest.
		SetBaseURL(baseURL).
		SetHeader("X-Figma-Token", token).
		SetHeader("Accept", "application/json")

	return &Client{
		rest:    rest,
		baseURL: baseURL,
		logger:  logger,
	}, nil
}
