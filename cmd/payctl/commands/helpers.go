// Package commands implements the payctl subcommands.
package commands

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/paykit-io/paykit-go/internal/constants"
	"github.com/paykit-io/paykit-go/pkg/paykit"
	"github.com/paykit-io/paykit-go/pkg/payclient"
)

// newClient builds a paykit client from the CLI configuration. When no key
// is configured and stdin is a terminal, the user is prompted for one.
func newClient() (paykit.Client, error) {
	apiKey := viper.GetString("api-key")

	if apiKey == "" {
		prompted, err := promptAPIKey()
		if err != nil {
			return nil, err
		}

		apiKey = prompted
	}

	config := &paykit.Config{
		BaseURL: viper.GetString("base-url"),
		Debug:   viper.GetBool("debug"),
	}

	var err error
	if strings.HasPrefix(apiKey, "access_") {
		err = config.SetAccessToken(apiKey)
	} else {
		err = config.SetAPIKey(apiKey)
	}

	if err != nil {
		return nil, err
	}

	if config.Debug {
		config.Logger = newCLILogger()
	}

	return payclient.New(config)
}

func promptAPIKey() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", constants.ErrAPIKeyNotConfigured
	}

	fmt.Fprint(os.Stderr, "API key: ")

	keyBytes, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading API key: %w", err)
	}

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return "", constants.ErrAPIKeyNotConfigured
	}

	return key, nil
}

// cliLogger adapts zerolog to the paykit.Logger interface.
type cliLogger struct {
	logger zerolog.Logger
}

func newCLILogger() *cliLogger {
	return &cliLogger{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

func (l *cliLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *cliLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *cliLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *cliLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}

// amountFromFlags builds an Amount from --amount/--currency values, or nil
// when both are empty.
func amountFromFlags(value, currency string) (*paykit.Amount, error) {
	if value == "" && currency == "" {
		return nil, nil
	}

	if value == "" || currency == "" {
		return nil, constants.ErrAmountRequired
	}

	return &paykit.Amount{Value: value, Currency: currency}, nil
}

func formatAmount(amount *paykit.Amount) string {
	if amount == nil {
		return constants.NotAvailable
	}

	return amount.Value + " " + amount.Currency
}
