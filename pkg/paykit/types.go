package paykit

import "net/url"

// Version is the release version of this library, reported in the User-Agent
// header of every request.
const Version = "1.2.0"

// Amount represents a monetary value. The value is a decimal string to avoid
// floating-point rounding on the wire.
type Amount struct {
	Value    string `json:"value"    yaml:"value"`
	Currency string `json:"currency" yaml:"currency"`
}

// Links represents resource links keyed by link relation.
type Links map[string]Link

// Link represents a single link.
type Link struct {
	Href string `json:"href"           yaml:"href"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Extra holds response fields that have no counterpart on the typed resource
// struct. The API adds fields over time; they land here instead of being
// dropped.
type Extra map[string]interface{}

// ExtraSetter is implemented by resource types that capture unknown response
// fields.
type ExtraSetter interface {
	SetExtra(map[string]interface{})
}

// Identifiable is implemented by resource types that carry an identifier,
// so they can be bound as the parent of a sub-resource endpoint.
type Identifiable interface {
	ResourceID() string
}

// List represents a paginated collection of resources. Items holds one page;
// Count is the total size of the collection, which may exceed len(Items).
type List[T any] struct {
	Count int   `json:"count"  yaml:"count"`
	Links Links `json:"_links" yaml:"_links"`
	Items []*T  `json:"-"      yaml:"-"`
}

// Append adds an item to the collection, preserving order.
func (l *List[T]) Append(item *T) {
	l.Items = append(l.Items, item)
}

// NextFrom extracts the cursor for the next page from the collection's
// "next" link. It returns false when there is no next page.
func (l *List[T]) NextFrom() (string, bool) {
	next, ok := l.Links["next"]
	if !ok || next.Href == "" {
		return "", false
	}

	parsed, err := url.Parse(next.Href)
	if err != nil {
		return "", false
	}

	from := parsed.Query().Get("from")
	if from == "" {
		return "", false
	}

	return from, true
}

// PaymentList represents a paginated list of Payment resources.
type PaymentList = List[Payment]

// RefundList represents a paginated list of Refund resources.
type RefundList = List[Refund]

// MethodList represents a paginated list of Method resources.
type MethodList = List[Method]
