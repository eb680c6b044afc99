package rest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/paykit-go/internal/http"
	"github.com/paykit-io/paykit-go/pkg/paykit"
)

// fakeDoer records the requests it receives and plays back canned
// responses.
type fakeDoer struct {
	requests  []*http.Request
	responses []*http.Response
	err       error
}

func (d *fakeDoer) Do(_ context.Context, req *http.Request) (*http.Response, error) {
	d.requests = append(d.requests, req)

	if d.err != nil {
		return nil, d.err
	}

	resp := d.responses[0]
	if len(d.responses) > 1 {
		d.responses = d.responses[1:]
	}

	return resp, nil
}

func respond(body string) []*http.Response {
	return []*http.Response{{StatusCode: 200, Body: []byte(body)}}
}

func newPaymentsEndpoint(doer *fakeDoer) *Endpoint[paykit.Payment] {
	return NewEndpoint(doer, "Payments", "payments", func() *paykit.Payment {
		return &paykit.Payment{}
	})
}

func newRefundsEndpoint(doer *fakeDoer) *Endpoint[paykit.Refund] {
	return NewEndpoint(doer, "payments_refunds", "refunds", func() *paykit.Refund {
		return &paykit.Refund{}
	})
}

func TestEndpoint_Create(t *testing.T) {
	t.Parallel()

	doer := &fakeDoer{responses: respond(`{"id":"tr_WDqYK6vllg","status":"open"}`)}

	payment, err := newPaymentsEndpoint(doer).Create(context.Background(),
		map[string]string{"description": "Order #12345"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "tr_WDqYK6vllg", payment.ID)
	assert.Equal(t, "open", payment.Status)

	require.Len(t, doer.requests, 1)
	assert.Equal(t, "POST", doer.requests[0].Method)
	assert.Equal(t, "payments", doer.requests[0].Path)
	assert.Empty(t, doer.requests[0].RawQuery)
	assert.NotNil(t, doer.requests[0].Body)
}

func TestEndpoint_Get(t *testing.T) {
	t.Parallel()
	t.Run("resolves the item path", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"id":"tr_WDqYK6vllg"}`)}

		payment, err := newPaymentsEndpoint(doer).Get(context.Background(), "tr_WDqYK6vllg", nil)
		require.NoError(t, err)
		assert.Equal(t, "tr_WDqYK6vllg", payment.ID)

		require.Len(t, doer.requests, 1)
		assert.Equal(t, "GET", doer.requests[0].Method)
		assert.Equal(t, "payments/tr_WDqYK6vllg", doer.requests[0].Path)
	})

	t.Run("appends filters", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"id":"tr_WDqYK6vllg"}`)}

		filters := paykit.NewFilters().Set("embed", "refunds")
		_, err := newPaymentsEndpoint(doer).Get(context.Background(), "tr_WDqYK6vllg", filters)
		require.NoError(t, err)

		assert.Equal(t, "embed=refunds", doer.requests[0].RawQuery)
	})

	t.Run("empty identifier stays off the network", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{}

		_, err := newPaymentsEndpoint(doer).Get(context.Background(), "  ", nil)
		require.ErrorIs(t, err, paykit.ErrIdentifierRequired)
		assert.Empty(t, doer.requests)
	})

	t.Run("identifier is escaped", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"id":"x"}`)}

		_, err := newPaymentsEndpoint(doer).Get(context.Background(), "tr_a/b", nil)
		require.NoError(t, err)
		assert.Equal(t, "payments/tr_a%2Fb", doer.requests[0].Path)
	})
}

func TestEndpoint_Update(t *testing.T) {
	t.Parallel()

	doer := &fakeDoer{responses: respond(`{"id":"tr_WDqYK6vllg","description":"Updated"}`)}

	payment, err := newPaymentsEndpoint(doer).Update(context.Background(), "tr_WDqYK6vllg",
		map[string]string{"description": "Updated"})
	require.NoError(t, err)
	assert.Equal(t, "Updated", payment.Description)

	// Updates travel as a replace-POST on the item path.
	require.Len(t, doer.requests, 1)
	assert.Equal(t, "POST", doer.requests[0].Method)
	assert.Equal(t, "payments/tr_WDqYK6vllg", doer.requests[0].Path)
}

func TestEndpoint_Delete(t *testing.T) {
	t.Parallel()
	t.Run("empty body means acknowledged", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond("")}

		payment, err := newPaymentsEndpoint(doer).Delete(context.Background(), "tr_WDqYK6vllg")
		require.NoError(t, err)
		assert.Nil(t, payment)

		assert.Equal(t, "DELETE", doer.requests[0].Method)
		assert.Equal(t, "payments/tr_WDqYK6vllg", doer.requests[0].Path)
	})

	t.Run("json null means acknowledged", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond("null")}

		payment, err := newPaymentsEndpoint(doer).Delete(context.Background(), "tr_WDqYK6vllg")
		require.NoError(t, err)
		assert.Nil(t, payment)
	})

	t.Run("body reflects the cancelled state", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"id":"tr_WDqYK6vllg","status":"canceled"}`)}

		payment, err := newPaymentsEndpoint(doer).Delete(context.Background(), "tr_WDqYK6vllg")
		require.NoError(t, err)
		require.NotNil(t, payment)
		assert.True(t, payment.IsCanceled())
	})

	t.Run("error payload surfaces", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"error":{"type":"request","message":"Cannot cancel"}}`)}

		_, err := newPaymentsEndpoint(doer).Delete(context.Background(), "tr_WDqYK6vllg")
		require.Error(t, err)
		assert.True(t, paykit.IsAPIError(err))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestEndpoint_List(t *testing.T) {
	t.Parallel()
	t.Run("cursor and limit are always sent", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"count":0}`)}

		_, err := newPaymentsEndpoint(doer).List(context.Background(), "", 50, nil)
		require.NoError(t, err)

		assert.Equal(t, "from=&limit=50", doer.requests[0].RawQuery)
	})

	t.Run("extra filters precede the cursor", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"count":0}`)}

		filters := paykit.NewFilters().Set("profileId", "pfl_3RkSN1zuPE")
		_, err := newPaymentsEndpoint(doer).List(context.Background(), "tr_7UhSN1zuXS", 10, filters)
		require.NoError(t, err)

		assert.Equal(t, "profileId=pfl_3RkSN1zuPE&from=tr_7UhSN1zuXS&limit=10", doer.requests[0].RawQuery)
	})

	t.Run("caller filters are left untouched", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"count":0}`)}

		filters := paykit.NewFilters().Set("profileId", "pfl_3RkSN1zuPE")
		_, err := newPaymentsEndpoint(doer).List(context.Background(), "", 10, filters)
		require.NoError(t, err)

		assert.Equal(t, 1, filters.Len())
		assert.Empty(t, filters.Get("limit"))
	})

	t.Run("envelope is unpacked in order", func(t *testing.T) {
		t.Parallel()

		body := `{
			"count": 3,
			"_embedded": {
				"payments": [
					{"id": "tr_1", "status": "paid"},
					{"id": "tr_2", "status": "open"},
					{"id": "tr_3", "status": "expired"}
				]
			},
			"_links": {
				"self": {"href": "https://api.example.org/v2/payments?from=&limit=3"},
				"next": {"href": "https://api.example.org/v2/payments?from=tr_4&limit=3"}
			}
		}`
		doer := &fakeDoer{responses: respond(body)}

		payments, err := newPaymentsEndpoint(doer).List(context.Background(), "", 3, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, payments.Count)
		require.Len(t, payments.Items, 3)
		assert.Equal(t, "tr_1", payments.Items[0].ID)
		assert.Equal(t, "tr_2", payments.Items[1].ID)
		assert.Equal(t, "tr_3", payments.Items[2].ID)

		next, ok := payments.NextFrom()
		require.True(t, ok)
		assert.Equal(t, "tr_4", next)
	})

	t.Run("missing embedded section yields an empty page", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"count":12,"_links":{}}`)}

		payments, err := newPaymentsEndpoint(doer).List(context.Background(), "", 10, nil)
		require.NoError(t, err)
		assert.Equal(t, 12, payments.Count)
		assert.Empty(t, payments.Items)
	})

	t.Run("error envelope surfaces as api error", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"error":{"type":"request","message":"The limit is invalid","field":"limit"}}`)}

		_, err := newPaymentsEndpoint(doer).List(context.Background(), "", -1, nil)
		require.Error(t, err)
		assert.Equal(t, "limit", paykit.APIErrorField(err))
	})
}

func TestEndpoint_ParentBinding(t *testing.T) {
	t.Parallel()
	t.Run("nested operations need a parent", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{}

		_, err := newRefundsEndpoint(doer).List(context.Background(), "", 10, nil)
		require.ErrorIs(t, err, paykit.ErrMissingParentID)
		assert.Empty(t, doer.requests)
	})

	t.Run("bound parent appears in the path", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"count":0}`)}

		_, err := newRefundsEndpoint(doer).WithParentID("tr_7UhSN1zuXS").List(context.Background(), "", 50, nil)
		require.NoError(t, err)
		assert.Equal(t, "payments/tr_7UhSN1zuXS/refunds", doer.requests[0].Path)
		assert.Equal(t, "from=&limit=50", doer.requests[0].RawQuery)
	})

	t.Run("parent can be bound from a resource", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"id":"re_4qqhO89gsT"}`)}

		parent := &paykit.Payment{ID: "tr_7UhSN1zuXS"}
		refund, err := newRefundsEndpoint(doer).WithParent(parent).Get(context.Background(), "re_4qqhO89gsT", nil)
		require.NoError(t, err)
		assert.Equal(t, "re_4qqhO89gsT", refund.ID)
		assert.Equal(t, "payments/tr_7UhSN1zuXS/refunds/re_4qqhO89gsT", doer.requests[0].Path)
	})

	t.Run("rebinding switches the parent", func(t *testing.T) {
		t.Parallel()

		doer := &fakeDoer{responses: respond(`{"count":0}`)}

		endpoint := newRefundsEndpoint(doer).WithParentID("tr_first")

		_, err := endpoint.List(context.Background(), "", 10, nil)
		require.NoError(t, err)

		_, err = endpoint.WithParentID("tr_second").List(context.Background(), "", 10, nil)
		require.NoError(t, err)

		assert.Equal(t, "payments/tr_first/refunds", doer.requests[0].Path)
		assert.Equal(t, "payments/tr_second/refunds", doer.requests[1].Path)
	})
}

func TestEndpoint_LowercasesTemplate(t *testing.T) {
	t.Parallel()

	doer := &fakeDoer{responses: respond(`{"count":0}`)}

	_, err := newPaymentsEndpoint(doer).List(context.Background(), "", 10, nil)
	require.NoError(t, err)
	assert.Equal(t, "payments", doer.requests[0].Path)
}
