package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/paykit-io/paykit-go/internal/constants"
)

// renderStructured prints value as JSON or YAML according to the output
// flag. It returns false when the configured format is the table default,
// leaving rendering to the caller.
func renderStructured(value interface{}) (bool, error) {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	case constants.FormatTable, "":
		return false, nil
	default:
		return true, constants.ErrUnknownOutputFormat
	}
}
