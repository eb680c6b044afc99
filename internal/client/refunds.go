package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/paykit-io/paykit-go/internal/rest"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// refundIDPrefix is the prefix every refund identifier carries.
const refundIDPrefix = "re_"

// RefundsClient implements paykit.RefundsClient. Refunds are a sub-resource
// of payments; every operation binds the parent payment id on a fresh
// endpoint instance, so the client itself is safe for concurrent use.
type RefundsClient struct {
	transport rest.Doer
}

// NewRefundsClient creates a new refunds client.
func NewRefundsClient(transport rest.Doer) *RefundsClient {
	return &RefundsClient{transport: transport}
}

func newRefundsEndpoint(transport rest.Doer) *rest.Endpoint[paykit.Refund] {
	return rest.NewEndpoint(transport, "payments_refunds", "refunds", func() *paykit.Refund {
		return &paykit.Refund{}
	})
}

// Create implements paykit.RefundsClient.Create.
func (c *RefundsClient) Create(ctx context.Context, paymentID string, request *paykit.RefundRequest) (*paykit.Refund, error) {
	err := validatePaymentID(paymentID)
	if err != nil {
		return nil, err
	}

	refund, err := newRefundsEndpoint(c.transport).WithParentID(paymentID).Create(ctx, request, nil)
	if err != nil {
		return nil, fmt.Errorf("creating refund: %w", err)
	}

	return refund, nil
}

// Get implements paykit.RefundsClient.Get.
func (c *RefundsClient) Get(ctx context.Context, paymentID, refundID string, filters *paykit.Filters) (*paykit.Refund, error) {
	err := validatePaymentID(paymentID)
	if err != nil {
		return nil, err
	}

	err = validateRefundID(refundID)
	if err != nil {
		return nil, err
	}

	refund, err := newRefundsEndpoint(c.transport).WithParentID(paymentID).Get(ctx, refundID, filters)
	if err != nil {
		return nil, fmt.Errorf("getting refund: %w", err)
	}

	return refund, nil
}

// List implements paykit.RefundsClient.List.
func (c *RefundsClient) List(ctx context.Context, paymentID, from string, limit int, filters *paykit.Filters) (*paykit.RefundList, error) {
	err := validatePaymentID(paymentID)
	if err != nil {
		return nil, err
	}

	refunds, err := newRefundsEndpoint(c.transport).WithParentID(paymentID).List(ctx, from, limit, filters)
	if err != nil {
		return nil, fmt.Errorf("listing refunds: %w", err)
	}

	return refunds, nil
}

// Cancel implements paykit.RefundsClient.Cancel. Only refunds that are
// still queued or pending can be cancelled.
func (c *RefundsClient) Cancel(ctx context.Context, paymentID, refundID string) error {
	err := validatePaymentID(paymentID)
	if err != nil {
		return err
	}

	err = validateRefundID(refundID)
	if err != nil {
		return err
	}

	_, err = newRefundsEndpoint(c.transport).WithParentID(paymentID).Delete(ctx, refundID)
	if err != nil {
		return fmt.Errorf("canceling refund: %w", err)
	}

	return nil
}

func validateRefundID(id string) error {
	if strings.TrimSpace(id) == "" {
		return paykit.ErrIdentifierRequired
	}

	if !strings.HasPrefix(id, refundIDPrefix) {
		return fmt.Errorf("%w: refund id must start with %q", paykit.ErrInvalidIdentifier, refundIDPrefix)
	}

	return nil
}
