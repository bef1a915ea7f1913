package order_test

import (
	"testing"

	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{order.Placed, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled}
	for _, s := range valid {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("Unknown is invalid", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
	})

	t.Run("out of range is invalid", func(t *testing.T) {
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Placed", order.Placed.String())
	assert.Equal(t, "Preparing", order.Preparing.String())
	assert.Equal(t, "OutForDelivery", order.OutForDelivery.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Placed, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid status")
	})

	t.Run("rejects the Unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := []struct{ from, to order.Status }{
		{order.Placed, order.Preparing},
		{order.Placed, order.Cancelled},
		{order.Preparing, order.OutForDelivery},
		{order.Preparing, order.Cancelled},
		{order.OutForDelivery, order.Delivered},
	}
	for _, tc := range allowed {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})
	}

	denied := []struct{ from, to order.Status }{
		{order.Placed, order.Delivered},
		{order.Placed, order.OutForDelivery},
		{order.Preparing, order.Delivered},
		{order.OutForDelivery, order.Cancelled},
		{order.Delivered, order.Placed},
		{order.Cancelled, order.Preparing},
	}
	for _, tc := range denied {
		t.Run(tc.from.String()+"_to_"+tc.to.String()+"_denied", func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)
			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrStatusTransitionIsInvalid)
		})
	}

	t.Run("rejects invalid target", func(t *testing.T) {
		_, err := order.Placed.TransitionTo(order.Unknown)
		require.Error(t, err)
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.False(t, order.Placed.IsFinal())
	assert.False(t, order.Preparing.IsFinal())
	assert.False(t, order.OutForDelivery.IsFinal())
}
