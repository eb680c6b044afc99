package paykit

// Refund statuses.
const (
	RefundStatusQueued     = "queued"
	RefundStatusPending    = "pending"
	RefundStatusProcessing = "processing"
	RefundStatusRefunded   = "refunded"
	RefundStatusFailed     = "failed"
)

// Refund represents a refund of (part of) a payment.
type Refund struct {
	ID               string  `json:"id"                         yaml:"id"`
	PaymentID        string  `json:"paymentId,omitempty"        yaml:"paymentId,omitempty"`
	Amount           *Amount `json:"amount,omitempty"           yaml:"amount,omitempty"`
	SettlementAmount *Amount `json:"settlementAmount,omitempty" yaml:"settlementAmount,omitempty"`
	Status           string  `json:"status,omitempty"           yaml:"status,omitempty"`
	CreatedAt        string  `json:"createdAt,omitempty"        yaml:"createdAt,omitempty"`
	Description      string  `json:"description,omitempty"      yaml:"description,omitempty"`
	Links            Links   `json:"_links,omitempty"           yaml:"_links,omitempty"`
	Extra            Extra   `json:"-"                          yaml:"-"`
}

// ResourceID implements Identifiable.
func (r *Refund) ResourceID() string {
	return r.ID
}

// SetExtra implements ExtraSetter.
func (r *Refund) SetExtra(fields map[string]interface{}) {
	r.Extra = fields
}

// IsQueued reports whether the refund is waiting for a balance to become
// available.
func (r *Refund) IsQueued() bool {
	return r.Status == RefundStatusQueued
}

// IsPending reports whether the refund has not been sent to the bank yet and
// can still be cancelled.
func (r *Refund) IsPending() bool {
	return r.Status == RefundStatusPending
}

// IsProcessing reports whether the refund is on its way to the customer.
func (r *Refund) IsProcessing() bool {
	return r.Status == RefundStatusProcessing
}

// IsRefunded reports whether the refund has been settled.
func (r *Refund) IsRefunded() bool {
	return r.Status == RefundStatusRefunded
}

// IsFailed reports whether the refund could not be processed.
func (r *Refund) IsFailed() bool {
	return r.Status == RefundStatusFailed
}

// RefundRequest is the payload for creating a refund. A nil Amount refunds
// the full remaining amount of the payment.
type RefundRequest struct {
	Amount      *Amount                `json:"amount,omitempty"      yaml:"amount,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"    yaml:"metadata,omitempty"`
}
