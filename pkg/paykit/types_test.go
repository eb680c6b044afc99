package paykit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paykit-io/paykit-go/pkg/paykit"
)

func TestList_Append(t *testing.T) {
	t.Parallel()

	list := &paykit.PaymentList{Count: 3}
	list.Append(&paykit.Payment{ID: "tr_1"})
	list.Append(&paykit.Payment{ID: "tr_2"})

	require.Len(t, list.Items, 2)
	assert.Equal(t, "tr_1", list.Items[0].ID)
	assert.Equal(t, "tr_2", list.Items[1].ID)
}

func TestList_NextFrom(t *testing.T) {
	t.Parallel()
	t.Run("extracts the cursor from the next link", func(t *testing.T) {
		t.Parallel()

		list := &paykit.PaymentList{
			Links: paykit.Links{
				"next": {Href: "https://api.paykit.io/v2/payments?from=tr_9&limit=10"},
			},
		}

		from, ok := list.NextFrom()
		require.True(t, ok)
		assert.Equal(t, "tr_9", from)
	})

	t.Run("no next link", func(t *testing.T) {
		t.Parallel()

		list := &paykit.PaymentList{
			Links: paykit.Links{
				"self": {Href: "https://api.paykit.io/v2/payments?from=&limit=10"},
			},
		}

		_, ok := list.NextFrom()
		assert.False(t, ok)
	})

	t.Run("empty next href", func(t *testing.T) {
		t.Parallel()

		list := &paykit.PaymentList{Links: paykit.Links{"next": {}}}

		_, ok := list.NextFrom()
		assert.False(t, ok)
	})

	t.Run("next link without cursor", func(t *testing.T) {
		t.Parallel()

		list := &paykit.PaymentList{
			Links: paykit.Links{
				"next": {Href: "https://api.paykit.io/v2/payments?limit=10"},
			},
		}

		_, ok := list.NextFrom()
		assert.False(t, ok)
	})

	t.Run("unparseable href", func(t *testing.T) {
		t.Parallel()

		list := &paykit.PaymentList{Links: paykit.Links{"next": {Href: "://bad"}}}

		_, ok := list.NextFrom()
		assert.False(t, ok)
	})
}
