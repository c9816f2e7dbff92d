package azure

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/agentkit-io/agentkit/pkg/shared/config"
)

const clientName = "azure"

// Client wraps the Azure DevOps REST API. Method contracts are typed; their
// transport behavior is intentionally left unimplemented. Rides a
// retryablehttp standard client rather than resty.
type Client struct {
	http         *http.Client
	baseURL      string
	organization string
	project      string
	logger       hclog.Logger
}

// AuthInfo holds the personal access token used for basic auth.
type AuthInfo struct {
	Token string
}

// NewClient builds an Azure DevOps client for one organization/project.
func NewClient(endpoint config.Endpoint, organization, project string, auth AuthInfo, cfg *config.Config, logger hclog.Logger) (*Client, error) {
	baseURL := endpoint.BaseURL
	if baseURL == "" {
		baseURL = "https://dev.azure.com"
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid azure base URL %q: %w", baseURL, err)
	}
	if organization == "" || project == "" {
		return nil, fmt.Errorf("azure organization and project must be set")
	}
	if auth.Token == "" {
		return nil, fmt.Errorf("azure token is empty")
	}

	return &Client{
		http:         setupRetryableClient(&cfg.HttpClient),
		baseURL:      baseURL,
		organization: organization,
		project:      project,
		logger:       logger,
	}, nil
}

// setupRetryableClient builds a standard http.Client with retry logic from
// the shared HTTP configuration.
func setupRetryableClient(httpConfig *config.HttpClient) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = config.SetThen(httpConfig.RetryCount, config.DefaultHttpConfig().RetryCount)
	retryClient.RetryWaitMin = config.SetThen(httpConfig.RetryWaitTime, config.DefaultHttpConfig().RetryWaitTime)
	retryClient.RetryWaitMax = config.SetThen(httpConfig.RetryMaxWaitTime, config.DefaultHttpConfig().RetryMaxWaitTime)

	var proxyFunc func(*http.Request) (*url.URL, error)
	if httpConfig.Proxy.Host != "" && httpConfig.Proxy.Port != "" {
		proxyURL, err := url.Parse(fmt.Sprintf("%s:%s", httpConfig.Proxy.Host, httpConfig.Proxy.Port))
		if err == nil {
			proxyFunc = http.ProxyURL(proxyURL)
		}
	}

	// the transport goes on the inner client so the retry wrapper stays in
	// the request path
	retryClient.HTTPClient.Transport = &http.Transport{
		Proxy: proxyFunc,
		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: !config.GetBoolValue(httpConfig.TlsClientConfig, "Verify", true),
		},
	}

	standardClient := retryClient.StandardClient()
	standardClient.Timeout = config.SetThen(httpConfig.Timeout, config.DefaultHttpConfig().Timeout)

	return standardClient
}
