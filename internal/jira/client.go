package jira

import (
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/agentkit-io/agentkit/pkg/shared/config"
	"github.com/agentkit-io/agentkit/pkg/shared/httpclient"
)

const clientName = "jira"

// Client wraps the Jira Cloud REST API v3. Method contracts are typed; their
// transport behavior is intentionally left unimplemented and every call
// returns a NotImplementedError until the HTTP layer is filled in.
type Client struct {
	rest    *resty.Client
	baseURL string
	logger  hclog.Logger
}

// AuthInfo holds basic-auth credentials for Jira Cloud.
type AuthInfo struct {
	Username string // account email
	Token    string // API token
}

// NewClient builds a Jira client from the endpoint configuration.
func NewClient(endpoint config.Endpoint, auth AuthInfo, cfg *config.Config, logger hclog.Logger) (*Client, error) {
	if endpoint.BaseURL == "" {
		return nil, fmt.Errorf("jira base URL is not configured")
	}
	if _, err := url.ParseRequestURI(endpoint.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid jira base URL %q: %w", endpoint.BaseURL, err)
	}
	if auth.Token == "" {
		return nil, fmt.Errorf("jira token is empty")
	}

	rest := httpclient.InitializeRestyClient(logger, cfg)
	rest.
		SetBaseURL(endpoint.BaseURL).
		SetBasicAuth(auth.Username, auth.Token).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		rest:    rest,
		baseURL: endpoint.BaseURL,
		logger:  logger,
	}, nil
}
