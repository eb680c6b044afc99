// Package client implements the paykit.Client interface on top of the
// generic rest endpoint.
package client

import (
	"github.com/paykit-io/paykit-go/internal/constants"
	"github.com/paykit-io/paykit-go/internal/http"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// Client implements the paykit.Client interface.
type Client struct {
	httpClient *http.Client
	logger     paykit.Logger

	// Resource clients
	payments paykit.PaymentsClient
	refunds  paykit.RefundsClient
	methods  paykit.MethodsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *paykit.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	for _, token := range config.VersionStrings {
		httpOpts = append(httpOpts, http.WithVersionString(token))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new Paykit API client. The credential is validated here;
// a missing or malformed API key or access token fails construction.
func New(config *paykit.Config) (*Client, error) {
	credential, err := config.Credential()
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, credential, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		logger:     config.Logger,
	}

	client.payments = NewPaymentsClient(httpClient)
	client.refunds = NewRefundsClient(httpClient)
	client.methods = NewMethodsClient(httpClient)

	return client, nil
}

// Payments implements paykit.Client.Payments.
func (c *Client) Payments() paykit.PaymentsClient {
	return c.payments
}

// Refunds implements paykit.Client.Refunds.
func (c *Client) Refunds() paykit.RefundsClient {
	return c.refunds
}

// Methods implements paykit.Client.Methods.
func (c *Client) Methods() paykit.MethodsClient {
	return c.methods
}
