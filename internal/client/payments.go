package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/paykit-io/paykit-go/internal/rest"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// paymentIDPrefix is the prefix every payment identifier carries.
const paymentIDPrefix = "tr_"

// PaymentsClient implements paykit.PaymentsClient.
type PaymentsClient struct {
	transport rest.Doer
	endpoint  *rest.Endpoint[paykit.Payment]
}

// NewPaymentsClient creates a new payments client.
func NewPaymentsClient(transport rest.Doer) *PaymentsClient {
	return &PaymentsClient{
		transport: transport,
		endpoint:  newPaymentsEndpoint(transport),
	}
}

func newPaymentsEndpoint(transport rest.Doer) *rest.Endpoint[paykit.Payment] {
	return rest.NewEndpoint(transport, "payments", "payments", func() *paykit.Payment {
		return &paykit.Payment{}
	})
}

// Create implements paykit.PaymentsClient.Create.
func (c *PaymentsClient) Create(ctx context.Context, request *paykit.PaymentRequest, filters *paykit.Filters) (*paykit.Payment, error) {
	payment, err := c.endpoint.Create(ctx, request, filters)
	if err != nil {
		return nil, fmt.Errorf("creating payment: %w", err)
	}

	return payment, nil
}

// Get implements paykit.PaymentsClient.Get. On top of the generic id
// validation it requires the "tr_" payment identifier prefix.
func (c *PaymentsClient) Get(ctx context.Context, id string, filters *paykit.Filters) (*paykit.Payment, error) {
	err := validatePaymentID(id)
	if err != nil {
		return nil, err
	}

	payment, err := c.endpoint.Get(ctx, id, filters)
	if err != nil {
		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return payment, nil
}

// Update implements paykit.PaymentsClient.Update.
func (c *PaymentsClient) Update(ctx context.Context, id string, request *paykit.PaymentRequest) (*paykit.Payment, error) {
	err := validatePaymentID(id)
	if err != nil {
		return nil, err
	}

	payment, err := c.endpoint.Update(ctx, id, request)
	if err != nil {
		return nil, fmt.Errorf("updating payment: %w", err)
	}

	return payment, nil
}

// Cancel implements paykit.PaymentsClient.Cancel. A nil payment with a nil
// error means the API acknowledged the cancellation without a body.
func (c *PaymentsClient) Cancel(ctx context.Context, id string) (*paykit.Payment, error) {
	err := validatePaymentID(id)
	if err != nil {
		return nil, err
	}

	payment, err := c.endpoint.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("canceling payment: %w", err)
	}

	return payment, nil
}

// List implements paykit.PaymentsClient.List.
func (c *PaymentsClient) List(ctx context.Context, from string, limit int, filters *paykit.Filters) (*paykit.PaymentList, error) {
	payments, err := c.endpoint.List(ctx, from, limit, filters)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}

	return payments, nil
}

// Refund implements paykit.PaymentsClient.Refund, posting to the payment's
// nested refunds path.
func (c *PaymentsClient) Refund(ctx context.Context, paymentID string, request *paykit.RefundRequest) (*paykit.Refund, error) {
	err := validatePaymentID(paymentID)
	if err != nil {
		return nil, err
	}

	refund, err := newRefundsEndpoint(c.transport).WithParentID(paymentID).Create(ctx, request, nil)
	if err != nil {
		return nil, fmt.Errorf("refunding payment: %w", err)
	}

	return refund, nil
}

func validatePaymentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return paykit.ErrIdentifierRequired
	}

	if !strings.HasPrefix(id, paymentIDPrefix) {
		return fmt.Errorf("%w: payment id must start with %q", paykit.ErrInvalidIdentifier, paymentIDPrefix)
	}

	return nil
}
