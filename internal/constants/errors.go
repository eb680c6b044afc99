package constants

import "errors"

// CLI configuration errors.
var (
	ErrAPIKeyNotConfigured = errors.New("no API key configured, pass --api-key or set PAYCTL_API_KEY")
	ErrUnknownOutputFormat = errors.New("unknown output format, expected table, json, or yaml")
	ErrAmountRequired      = errors.New("--amount and --currency are required")
	ErrDescriptionRequired = errors.New("--description is required")
)
