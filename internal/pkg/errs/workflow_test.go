package errs_test

import (
	"errors"
	"testing"

	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errGateway = errors.New("gateway timeout")

func TestInvalidOrderError(t *testing.T) {
	err := errs.NewInvalidOrderError("Order must contain at least one item")

	assert.Equal(t, "invalid order: Order must contain at least one item", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidOrder)
	assert.NotErrorIs(t, err, errs.ErrPaymentFailed)
}

func TestPaymentFailedError(t *testing.T) {
	t.Run("wraps cause", func(t *testing.T) {
		err := errs.NewPaymentFailedError(errGateway)

		assert.Equal(t, "payment failed: gateway timeout", err.Error())
		require.ErrorIs(t, err, errs.ErrPaymentFailed)
		require.ErrorIs(t, err, errGateway)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewPaymentFailedError(nil)

		assert.Equal(t, "payment failed", err.Error())
		require.ErrorIs(t, err, errs.ErrPaymentFailed)
	})
}

func TestStorageFailedError(t *testing.T) {
	t.Run("wraps cause", func(t *testing.T) {
		err := errs.NewStorageFailedError("save", errGateway)

		assert.Equal(t, "save", err.Operation)
		assert.Equal(t, "storage failed: save (cause: gateway timeout)", err.Error())
		require.ErrorIs(t, err, errs.ErrStorageFailed)
		require.ErrorIs(t, err, errGateway)
	})

	t.Run("as target", func(t *testing.T) {
		var wrapped error = errs.NewStorageFailedError("update", errs.NewObjectNotFoundError("order", "42"))

		var storageErr *errs.StorageFailedError
		require.ErrorAs(t, wrapped, &storageErr)
		assert.Equal(t, "update", storageErr.Operation)
		require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	})
}

func TestOrderNotFoundError(t *testing.T) {
	err := errs.NewOrderNotFoundError("b7f3")

	assert.Equal(t, "order not found: b7f3", err.Error())
	require.ErrorIs(t, err, errs.ErrOrderNotFound)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}
