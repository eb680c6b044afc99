package rest

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/paykit-io/paykit-go/internal/http"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// Doer sends a single API request. *http.Client is the production
// implementation.
type Doer interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Endpoint maps CRUD operations for one resource type onto HTTP requests.
// The path template may carry a nesting marker ("payments_refunds"); such
// endpoints need a parent id bound via WithParentID or WithParent before
// get/list style calls.
//
// The parent binding is mutable endpoint state and is not cleared between
// calls. An Endpoint must not be shared across concurrent operations that
// target different parents; use separate instances instead.
type Endpoint[T any] struct {
	transport Doer
	path      string
	parentID  string
	embedKey  string
	factory   func() *T
}

// NewEndpoint creates an endpoint for one resource type. The path template
// is lowercased at registration; embedKey names the resource array inside
// list envelopes (e.g. "payments").
func NewEndpoint[T any](transport Doer, path, embedKey string, factory func() *T) *Endpoint[T] {
	return &Endpoint[T]{
		transport: transport,
		path:      strings.ToLower(path),
		embedKey:  embedKey,
		factory:   factory,
	}
}

// WithParentID binds the parent resource id for a nested endpoint and
// returns the receiver for chaining.
func (e *Endpoint[T]) WithParentID(parentID string) *Endpoint[T] {
	e.parentID = parentID

	return e
}

// WithParent binds the parent id from a parent resource object.
func (e *Endpoint[T]) WithParent(parent paykit.Identifiable) *Endpoint[T] {
	return e.WithParentID(parent.ResourceID())
}

// Create posts data to the resource collection and returns the created
// resource.
func (e *Endpoint[T]) Create(ctx context.Context, data interface{}, filters *paykit.Filters) (*T, error) {
	path, err := ResolvePath(e.path, e.parentID)
	if err != nil {
		return nil, err
	}

	resp, err := e.transport.Do(ctx, &http.Request{
		Method:   nethttp.MethodPost,
		Path:     path,
		RawQuery: filters.Query(),
		Body:     data,
	})
	if err != nil {
		return nil, err
	}

	return e.materialize(resp.Body)
}

// Get retrieves a single resource by id.
func (e *Endpoint[T]) Get(ctx context.Context, id string, filters *paykit.Filters) (*T, error) {
	itemPath, err := e.itemPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := e.transport.Do(ctx, &http.Request{
		Method:   nethttp.MethodGet,
		Path:     itemPath,
		RawQuery: filters.Query(),
	})
	if err != nil {
		return nil, err
	}

	return e.materialize(resp.Body)
}

// Update replaces the resource's mutable details. The API models update as
// a replace-POST rather than PUT or PATCH; this is the documented wire
// contract.
func (e *Endpoint[T]) Update(ctx context.Context, id string, data interface{}) (*T, error) {
	itemPath, err := e.itemPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := e.transport.Do(ctx, &http.Request{
		Method: nethttp.MethodPost,
		Path:   itemPath,
		Body:   data,
	})
	if err != nil {
		return nil, err
	}

	return e.materialize(resp.Body)
}

// Delete removes (or cancels) the resource. Some deletions yield no body;
// in that case both return values are nil. Otherwise the returned resource
// reflects the deleted or cancelled state.
func (e *Endpoint[T]) Delete(ctx context.Context, id string) (*T, error) {
	itemPath, err := e.itemPath(id)
	if err != nil {
		return nil, err
	}

	resp, err := e.transport.Do(ctx, &http.Request{
		Method: nethttp.MethodDelete,
		Path:   itemPath,
	})
	if err != nil {
		return nil, err
	}

	decoded, err := Decode(resp.Body)
	if err != nil {
		if errors.Is(err, paykit.ErrEmptyResponse) {
			return nil, nil
		}

		return nil, err
	}

	if decoded == nil {
		return nil, nil
	}

	object, ok := decoded.(map[string]interface{})
	if !ok {
		return nil, &paykit.DecodeError{Raw: resp.Body, Err: fmt.Errorf("expected a JSON object, got %T", decoded)}
	}

	return e.materializeObject(object)
}

// List retrieves one page of the resource collection. The cursor and limit
// are always sent, an empty cursor meaning the start of the collection.
// Items appear in the order the API returned them.
func (e *Endpoint[T]) List(ctx context.Context, from string, limit int, filters *paykit.Filters) (*paykit.List[T], error) {
	path, err := ResolvePath(e.path, e.parentID)
	if err != nil {
		return nil, err
	}

	merged := filters.Clone().
		Set("from", from).
		Set("limit", strconv.Itoa(limit))

	resp, err := e.transport.Do(ctx, &http.Request{
		Method:   nethttp.MethodGet,
		Path:     path,
		RawQuery: merged.Query(),
	})
	if err != nil {
		return nil, err
	}

	envelope, err := DecodeObject(resp.Body)
	if err != nil {
		return nil, err
	}

	return e.collection(envelope, resp.Body)
}

func (e *Endpoint[T]) collection(envelope map[string]interface{}, raw []byte) (*paykit.List[T], error) {
	list := &paykit.List[T]{}

	if count, ok := envelope["count"].(float64); ok {
		list.Count = int(count)
	}

	if rawLinks, ok := envelope["_links"].(map[string]interface{}); ok {
		links := paykit.Links{}

		err := Materialize(rawLinks, &links)
		if err != nil {
			return nil, err
		}

		list.Links = links
	}

	embedded, ok := envelope["_embedded"].(map[string]interface{})
	if !ok {
		return list, nil
	}

	items, ok := embedded[e.embedKey].([]interface{})
	if !ok {
		return list, nil
	}

	for _, item := range items {
		object, ok := item.(map[string]interface{})
		if !ok {
			return nil, &paykit.DecodeError{Raw: raw, Err: fmt.Errorf("embedded %q item is %T, expected an object", e.embedKey, item)}
		}

		resource, err := e.materializeObject(object)
		if err != nil {
			return nil, err
		}

		list.Append(resource)
	}

	return list, nil
}

func (e *Endpoint[T]) materialize(body []byte) (*T, error) {
	object, err := DecodeObject(body)
	if err != nil {
		return nil, err
	}

	return e.materializeObject(object)
}

func (e *Endpoint[T]) materializeObject(object map[string]interface{}) (*T, error) {
	resource := e.factory()

	err := Materialize(object, resource)
	if err != nil {
		return nil, err
	}

	return resource, nil
}

// itemPath resolves the endpoint path and appends the URL-escaped id,
// rejecting empty identifiers before any network traffic happens.
func (e *Endpoint[T]) itemPath(id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", paykit.ErrIdentifierRequired
	}

	path, err := ResolvePath(e.path, e.parentID)
	if err != nil {
		return "", err
	}

	return path + "/" + url.PathEscape(id), nil
}
