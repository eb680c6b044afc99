package paykit

// Method represents a payment method available for the authenticated
// account, e.g. "ideal" or "creditcard".
type Method struct {
	ID            string       `json:"id"                      yaml:"id"`
	Description   string       `json:"description,omitempty"   yaml:"description,omitempty"`
	MinimumAmount *Amount      `json:"minimumAmount,omitempty" yaml:"minimumAmount,omitempty"`
	MaximumAmount *Amount      `json:"maximumAmount,omitempty" yaml:"maximumAmount,omitempty"`
	Status        string       `json:"status,omitempty"        yaml:"status,omitempty"`
	Image         *MethodImage `json:"image,omitempty"         yaml:"image,omitempty"`
	Links         Links        `json:"_links,omitempty"        yaml:"_links,omitempty"`
	Extra         Extra        `json:"-"                       yaml:"-"`
}

// MethodImage holds the logo of a payment method in several resolutions.
type MethodImage struct {
	Size1x string `json:"size1x,omitempty" yaml:"size1x,omitempty"`
	Size2x string `json:"size2x,omitempty" yaml:"size2x,omitempty"`
	SVG    string `json:"svg,omitempty"    yaml:"svg,omitempty"`
}

// ResourceID implements Identifiable.
func (m *Method) ResourceID() string {
	return m.ID
}

// SetExtra implements ExtraSetter.
func (m *Method) SetExtra(fields map[string]interface{}) {
	m.Extra = fields
}
