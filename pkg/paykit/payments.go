package paykit

// Payment statuses.
const (
	PaymentStatusOpen       = "open"
	PaymentStatusPending    = "pending"
	PaymentStatusAuthorized = "authorized"
	PaymentStatusPaid       = "paid"
	PaymentStatusCanceled   = "canceled"
	PaymentStatusExpired    = "expired"
	PaymentStatusFailed     = "failed"
)

// Payment represents a payment resource.
//
// Response fields the struct does not know about are collected in Extra, so
// additions to the API surface do not get dropped.
type Payment struct {
	ID              string                 `json:"id"                        yaml:"id"`
	Mode            string                 `json:"mode,omitempty"            yaml:"mode,omitempty"`
	CreatedAt       string                 `json:"createdAt,omitempty"       yaml:"createdAt,omitempty"`
	Status          string                 `json:"status,omitempty"          yaml:"status,omitempty"`
	IsCancelable    bool                   `json:"isCancelable,omitempty"    yaml:"isCancelable,omitempty"`
	Amount          *Amount                `json:"amount,omitempty"          yaml:"amount,omitempty"`
	AmountRefunded  *Amount                `json:"amountRefunded,omitempty"  yaml:"amountRefunded,omitempty"`
	AmountRemaining *Amount                `json:"amountRemaining,omitempty" yaml:"amountRemaining,omitempty"`
	Description     string                 `json:"description,omitempty"     yaml:"description,omitempty"`
	Method          string                 `json:"method,omitempty"          yaml:"method,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"        yaml:"metadata,omitempty"`
	Locale          string                 `json:"locale,omitempty"          yaml:"locale,omitempty"`
	ProfileID       string                 `json:"profileId,omitempty"       yaml:"profileId,omitempty"`
	SequenceType    string                 `json:"sequenceType,omitempty"    yaml:"sequenceType,omitempty"`
	RedirectURL     string                 `json:"redirectUrl,omitempty"     yaml:"redirectUrl,omitempty"`
	WebhookURL      string                 `json:"webhookUrl,omitempty"      yaml:"webhookUrl,omitempty"`
	ExpiresAt       string                 `json:"expiresAt,omitempty"       yaml:"expiresAt,omitempty"`
	PaidAt          string                 `json:"paidAt,omitempty"          yaml:"paidAt,omitempty"`
	CanceledAt      string                 `json:"canceledAt,omitempty"      yaml:"canceledAt,omitempty"`
	Links           Links                  `json:"_links,omitempty"          yaml:"_links,omitempty"`
	Extra           Extra                  `json:"-"                         yaml:"-"`
}

// ResourceID implements Identifiable.
func (p *Payment) ResourceID() string {
	return p.ID
}

// SetExtra implements ExtraSetter.
func (p *Payment) SetExtra(fields map[string]interface{}) {
	p.Extra = fields
}

// IsOpen reports whether the payment has been created but not completed.
func (p *Payment) IsOpen() bool {
	return p.Status == PaymentStatusOpen
}

// IsPending reports whether the payment is being processed.
func (p *Payment) IsPending() bool {
	return p.Status == PaymentStatusPending
}

// IsAuthorized reports whether the amount has been authorized but not yet
// captured.
func (p *Payment) IsAuthorized() bool {
	return p.Status == PaymentStatusAuthorized
}

// IsPaid reports whether the payment completed successfully.
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// IsCanceled reports whether the payment was cancelled.
func (p *Payment) IsCanceled() bool {
	return p.Status == PaymentStatusCanceled
}

// IsExpired reports whether the payment expired before completion.
func (p *Payment) IsExpired() bool {
	return p.Status == PaymentStatusExpired
}

// IsFailed reports whether the payment could not be completed.
func (p *Payment) IsFailed() bool {
	return p.Status == PaymentStatusFailed
}

// IsRefundable reports whether a refund can still be created for this
// payment.
func (p *Payment) IsRefundable() bool {
	return p.IsPaid() && p.AmountRemaining != nil && p.AmountRemaining.Value != "0.00"
}

// CheckoutURL returns the URL the customer should visit to complete the
// payment, or "" when the payment carries no checkout link.
func (p *Payment) CheckoutURL() string {
	return p.Links["checkout"].Href
}

// PaymentRequest is the payload for creating or updating a payment.
type PaymentRequest struct {
	Amount       *Amount                `json:"amount,omitempty"       yaml:"amount,omitempty"`
	Description  string                 `json:"description,omitempty"  yaml:"description,omitempty"`
	RedirectURL  string                 `json:"redirectUrl,omitempty"  yaml:"redirectUrl,omitempty"`
	WebhookURL   string                 `json:"webhookUrl,omitempty"   yaml:"webhookUrl,omitempty"`
	Method       string                 `json:"method,omitempty"       yaml:"method,omitempty"`
	Locale       string                 `json:"locale,omitempty"       yaml:"locale,omitempty"`
	SequenceType string                 `json:"sequenceType,omitempty" yaml:"sequenceType,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"     yaml:"metadata,omitempty"`
}
