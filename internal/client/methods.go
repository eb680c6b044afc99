package client

import (
	"context"
	"fmt"

	"github.com/paykit-io/paykit-go/internal/rest"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// MethodsClient implements paykit.MethodsClient.
type MethodsClient struct {
	endpoint *rest.Endpoint[paykit.Method]
}

// NewMethodsClient creates a new payment methods client.
func NewMethodsClient(transport rest.Doer) *MethodsClient {
	endpoint := rest.NewEndpoint(transport, "methods", "methods", func() *paykit.Method {
		return &paykit.Method{}
	})

	return &MethodsClient{endpoint: endpoint}
}

// Get implements paykit.MethodsClient.Get.
func (c *MethodsClient) Get(ctx context.Context, id string, filters *paykit.Filters) (*paykit.Method, error) {
	method, err := c.endpoint.Get(ctx, id, filters)
	if err != nil {
		return nil, fmt.Errorf("getting payment method: %w", err)
	}

	return method, nil
}

// List implements paykit.MethodsClient.List.
func (c *MethodsClient) List(ctx context.Context, from string, limit int, filters *paykit.Filters) (*paykit.MethodList, error) {
	methods, err := c.endpoint.List(ctx, from, limit, filters)
	if err != nil {
		return nil, fmt.Errorf("listing payment methods: %w", err)
	}

	return methods, nil
}
