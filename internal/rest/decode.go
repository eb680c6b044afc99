package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// Decode parses a response body into a generic JSON value. An empty body
// fails with paykit.ErrEmptyResponse, malformed JSON with a
// *paykit.DecodeError carrying the raw body, and a body holding an error
// payload with the *paykit.APIError built from it. A JSON null decodes to
// nil.
func Decode(body []byte) (interface{}, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, paykit.ErrEmptyResponse
	}

	var value interface{}

	err := json.Unmarshal(body, &value)
	if err != nil {
		return nil, &paykit.DecodeError{Raw: body, Err: err}
	}

	if object, ok := value.(map[string]interface{}); ok {
		if apiErr := apiErrorFrom(object); apiErr != nil {
			return nil, apiErr
		}
	}

	return value, nil
}

// DecodeObject parses a response body that must hold a JSON object.
func DecodeObject(body []byte) (map[string]interface{}, error) {
	value, err := Decode(body)
	if err != nil {
		return nil, err
	}

	object, ok := value.(map[string]interface{})
	if !ok {
		return nil, &paykit.DecodeError{Raw: body, Err: fmt.Errorf("expected a JSON object, got %T", value)}
	}

	return object, nil
}

func apiErrorFrom(object map[string]interface{}) *paykit.APIError {
	payload, ok := object["error"].(map[string]interface{})
	if !ok || len(payload) == 0 {
		return nil
	}

	return &paykit.APIError{
		Type:    stringField(payload, "type"),
		Message: stringField(payload, "message"),
		Field:   stringField(payload, "field"),
	}
}

func stringField(object map[string]interface{}, key string) string {
	value, _ := object[key].(string)

	return value
}

// Materialize copies a decoded JSON object field by field onto a freshly
// allocated target struct. Struct fields are matched by their json tag.
// Top-level fields with no struct counterpart are handed to the target's
// SetExtra, keeping the resource forward compatible with API additions.
func Materialize[T any](source map[string]interface{}, target *T) error {
	var metadata mapstructure.Metadata

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           target,
		Metadata:         &metadata,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("building resource decoder: %w", err)
	}

	err = decoder.Decode(source)
	if err != nil {
		return &paykit.DecodeError{Err: err}
	}

	setter, ok := any(target).(paykit.ExtraSetter)
	if !ok {
		return nil
	}

	extra := make(map[string]interface{})

	for _, key := range metadata.Unused {
		// Unused keys are reported with their full path; only top-level
		// fields belong in the extra bag.
		if strings.Contains(key, ".") {
			continue
		}

		extra[key] = source[key]
	}

	if len(extra) > 0 {
		setter.SetExtra(extra)
	}

	return nil
}
