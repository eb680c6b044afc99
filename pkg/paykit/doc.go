// Package paykit provides types, interfaces, and helpers for working with the
// Paykit payment-processing API.
//
// # Overview
//
// The paykit package defines the domain types (Payment, Refund, Method,
// Amount) and the interfaces for resource-oriented clients (PaymentsClient,
// RefundsClient, MethodsClient). A concrete implementation of these clients is
// provided by the payclient package, which wires configuration, transport, and
// credential validation. Most consumers should import payclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/paykit-io/paykit-go/pkg/paykit"
//	  "github.com/paykit-io/paykit-go/pkg/payclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := payclient.NewWithAPIKey("test_yourapikeystring1234567890abcdef")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of payments
//	  payments, err := cli.Payments().List(ctx, "", 50, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = payments
//	}
//
// # Filters and pagination
//
// Use Filters to express list options as an ordered set of query parameters.
// List responses are cursor-paginated; the Iterator helper walks the "next"
// links for you:
//
//	it := paykit.NewIterator(ctx, func(ctx context.Context, from string, limit int) (*paykit.PaymentList, error) {
//	  return cli.Payments().List(ctx, from, limit, nil)
//	}, 50)
//	for it.HasNext() {
//	  payment, err := it.Next()
//	  if err != nil { break }
//	  _ = payment
//	}
//
// # Errors
//
// Errors reported by the remote API are represented by APIError. Local
// failures use sentinel errors (ErrIdentifierRequired, ErrMissingParentID,
// ErrEmptyResponse, ...) or small typed errors (DecodeError, EncodeError,
// TransportError) that preserve their cause for errors.Is/errors.As.
package paykit
