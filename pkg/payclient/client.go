package payclient

import (
	"strings"

	"github.com/paykit-io/paykit-go/internal/client"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// New creates a new Paykit API client from the given configuration. The
// base URL is normalized (whitespace and trailing slash trimmed, "https://"
// added when no scheme is present) and the credential is validated; a
// missing or malformed credential fails construction.
func New(config *paykit.Config) (paykit.Client, error) {
	if config == nil {
		return nil, paykit.ErrConfigRequired
	}

	if config.BaseURL != "" {
		baseURL := strings.TrimSuffix(strings.TrimSpace(config.BaseURL), "/")
		if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
			baseURL = "https://" + baseURL
		}

		config.BaseURL = baseURL
	}

	paykitClient, err := client.New(config)
	if err != nil {
		return nil, err
	}

	return paykitClient, nil
}

// NewWithAPIKey creates a new client authenticating with an API key
// ("live_..." or "test_...").
func NewWithAPIKey(apiKey string) (paykit.Client, error) {
	config := &paykit.Config{}

	err := config.SetAPIKey(apiKey)
	if err != nil {
		return nil, err
	}

	return New(config)
}

// NewWithAccessToken creates a new client authenticating with an OAuth
// access token ("access_...").
func NewWithAccessToken(accessToken string) (paykit.Client, error) {
	config := &paykit.Config{}

	err := config.SetAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	return New(config)
}
