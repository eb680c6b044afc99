package paykit

import "context"

// Client provides access to all resource-specific clients.
type Client interface {
	Payments() PaymentsClient
	Refunds() RefundsClient
	Methods() MethodsClient
}

// PaymentsClient manages payments.
//
// Each method performs exactly one HTTP round trip, except Refund which
// posts to the payment's nested refunds path.
type PaymentsClient interface {
	// Create creates a payment.
	Create(ctx context.Context, request *PaymentRequest, filters *Filters) (*Payment, error)
	// Get retrieves a payment. The identifier must carry the "tr_" prefix.
	Get(ctx context.Context, id string, filters *Filters) (*Payment, error)
	// Update replaces the mutable details of a payment.
	Update(ctx context.Context, id string, request *PaymentRequest) (*Payment, error)
	// Cancel cancels a payment that is still cancelable. The API may return
	// the cancelled payment or an empty body; in the latter case both return
	// values are nil.
	Cancel(ctx context.Context, id string) (*Payment, error)
	// List retrieves a page of payments starting at the given cursor. An
	// empty cursor starts from the beginning of the collection.
	List(ctx context.Context, from string, limit int, filters *Filters) (*PaymentList, error)
	// Refund creates a refund for the payment.
	Refund(ctx context.Context, paymentID string, request *RefundRequest) (*Refund, error)
}

// RefundsClient manages refunds, which live nested under their payment.
type RefundsClient interface {
	// Create creates a refund for the payment.
	Create(ctx context.Context, paymentID string, request *RefundRequest) (*Refund, error)
	// Get retrieves a single refund of the payment.
	Get(ctx context.Context, paymentID, refundID string, filters *Filters) (*Refund, error)
	// List retrieves a page of the payment's refunds.
	List(ctx context.Context, paymentID, from string, limit int, filters *Filters) (*RefundList, error)
	// Cancel cancels a refund that has not been processed yet.
	Cancel(ctx context.Context, paymentID, refundID string) error
}

// MethodsClient provides read access to the payment methods available for
// the authenticated account.
type MethodsClient interface {
	Get(ctx context.Context, id string, filters *Filters) (*Method, error)
	List(ctx context.Context, from string, limit int, filters *Filters) (*MethodList, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
