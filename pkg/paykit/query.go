package paykit

import (
	"net/url"
	"strings"
)

// Filters is an ordered set of query parameters for list and read
// operations. Unlike url.Values, encoding preserves insertion order. Keys are
// unique; setting an existing key replaces its value in place.
type Filters struct {
	keys   []string
	values map[string]string
}

// NewFilters creates an empty filter set.
func NewFilters() *Filters {
	return &Filters{values: make(map[string]string)}
}

// Set adds or replaces a parameter and returns the receiver for chaining.
func (f *Filters) Set(key, value string) *Filters {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}

	f.values[key] = value

	return f
}

// Get returns the value for key, or "" when unset.
func (f *Filters) Get(key string) string {
	if f == nil {
		return ""
	}

	return f.values[key]
}

// Len returns the number of parameters. A nil receiver is empty.
func (f *Filters) Len() int {
	if f == nil {
		return 0
	}

	return len(f.keys)
}

// Clone returns an independent copy. Cloning a nil receiver yields an empty
// filter set.
func (f *Filters) Clone() *Filters {
	clone := NewFilters()
	if f == nil {
		return clone
	}

	for _, key := range f.keys {
		clone.Set(key, f.values[key])
	}

	return clone
}

// Encode renders the filters as a query string with a leading "?", or ""
// when empty. Values are URL-encoded; insertion order is preserved.
func (f *Filters) Encode() string {
	query := f.Query()
	if query == "" {
		return ""
	}

	return "?" + query
}

// Query renders the filters without the leading "?".
func (f *Filters) Query() string {
	if f.Len() == 0 {
		return ""
	}

	pairs := make([]string, 0, len(f.keys))
	for _, key := range f.keys {
		pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(f.values[key]))
	}

	return strings.Join(pairs, "&")
}
