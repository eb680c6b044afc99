package paykit

import (
	"regexp"
	"time"
)

// Credential mode prefixes.
const (
	ModeLive = "live"
	ModeTest = "test"
)

var (
	apiKeyPattern      = regexp.MustCompile(`^(live|test)_\w{30,}$`)
	accessTokenPattern = regexp.MustCompile(`^access_\w+$`)
)

// ValidateAPIKey checks that key looks like a Paykit API key
// ("live_..." or "test_..." followed by at least 30 word characters).
func ValidateAPIKey(key string) error {
	if !apiKeyPattern.MatchString(key) {
		return ErrInvalidAPIKey
	}

	return nil
}

// ValidateAccessToken checks that token looks like an OAuth access token
// ("access_" followed by word characters).
func ValidateAccessToken(token string) error {
	if !accessTokenPattern.MatchString(token) {
		return ErrInvalidAccessToken
	}

	return nil
}

// Config represents client configuration for building a paykit.Client.
//
// Exactly one credential mode is active at a time: an API key or an OAuth
// access token. Use SetAPIKey/SetAccessToken to switch modes; each setter
// clears the other credential. Credentials are validated when the client is
// constructed, not on each call.
type Config struct {
	// APIKey: static API key, "live_..." or "test_...".
	APIKey string
	// AccessToken: OAuth-style access token, "access_...". Takes precedence
	// over APIKey when both are set directly on the struct.
	AccessToken string

	// BaseURL: endpoint root. Defaults to the production API host. The
	// payclient constructor trims surrounding whitespace and a trailing
	// slash, and adds "https://" if no scheme is present.
	BaseURL string

	// HTTPTimeout: timeout for each HTTP round trip. Per-request deadlines
	// should generally be controlled via the context passed to client
	// methods.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of transport-level retries. Zero disables
	// retrying entirely, which is the default: the client performs exactly
	// one round trip per operation unless explicitly configured otherwise.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug: enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default leading User-Agent product token.
	UserAgent string
	// VersionStrings: extra product tokens appended to the User-Agent header,
	// for applications built on top of this library. Whitespace inside each
	// token is collapsed to hyphens.
	VersionStrings []string
}

// SetAPIKey validates and sets the API key, clearing any access token.
func (c *Config) SetAPIKey(key string) error {
	if err := ValidateAPIKey(key); err != nil {
		return err
	}

	c.APIKey = key
	c.AccessToken = ""

	return nil
}

// SetAccessToken validates and sets the OAuth access token, clearing any
// API key.
func (c *Config) SetAccessToken(token string) error {
	if err := ValidateAccessToken(token); err != nil {
		return err
	}

	c.AccessToken = token
	c.APIKey = ""

	return nil
}

// Credential validates and returns the active credential string.
func (c *Config) Credential() (string, error) {
	switch {
	case c.AccessToken != "":
		if err := ValidateAccessToken(c.AccessToken); err != nil {
			return "", err
		}

		return c.AccessToken, nil
	case c.APIKey != "":
		if err := ValidateAPIKey(c.APIKey); err != nil {
			return "", err
		}

		return c.APIKey, nil
	default:
		return "", ErrAPIKeyRequired
	}
}

// Mode reports whether the configured API key targets the live or test
// environment. Access tokens carry no mode; Mode returns "" for them.
func (c *Config) Mode() string {
	switch {
	case c.AccessToken != "":
		return ""
	case apiKeyPattern.MatchString(c.APIKey):
		return c.APIKey[:4]
	default:
		return ""
	}
}
