package commands_test

import (
	"errors"
	"testing"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderReadyCommandHandler_Handle_Success(t *testing.T) {
	current := orderIn(t, order.Preparing)
	repo, notifier := new(MockOrderRepository), new(MockNotifier)

	mock.InOrder(
		repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once(),
		repo.On("Update", mock.Anything, inStatus(order.Ready)).Return(nil).Once(),
		notifier.On("NotifyOrderReady", mock.Anything, inStatus(order.Ready)).Return(nil).Once(),
	)

	cmd, err := commands.NewMarkOrderReadyCommand(current.ID())
	require.NoError(t, err)
	handler := commands.NewMarkOrderReadyCommandHandler(repo, notifier)

	outcome, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, outcome.Transitioned)
	assert.Equal(t, order.Ready, outcome.Order.Status())
	assert.Empty(t, outcome.Warnings)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestMarkOrderReadyCommandHandler_Handle_AlreadyReadyIsANoOp(t *testing.T) {
	current := orderIn(t, order.Ready)
	repo, notifier := new(MockOrderRepository), new(MockNotifier)
	repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once()
	repo.On("Update", mock.Anything, inStatus(order.Ready)).Return(nil).Once()

	cmd, _ := commands.NewMarkOrderReadyCommand(current.ID())
	outcome, err := commands.NewMarkOrderReadyCommandHandler(repo, notifier).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.False(t, outcome.Transitioned)
	assert.Equal(t, order.Ready, outcome.Order.Status())
	repo.AssertExpectations(t)
	notifier.AssertNotCalled(t, "NotifyOrderReady", mock.Anything, mock.Anything)
}

func TestMarkOrderReadyCommandHandler_Handle_NotificationFailureIsAWarning(t *testing.T) {
	current := orderIn(t, order.Preparing)
	repo, notifier := new(MockOrderRepository), new(MockNotifier)
	repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()
	notifier.On("NotifyOrderReady", mock.Anything, mock.Anything).
		Return(ports.NewNotificationError(ports.EventOrderReady, errors.New("invalid recipient"))).Once()

	cmd, _ := commands.NewMarkOrderReadyCommand(current.ID())
	outcome, err := commands.NewMarkOrderReadyCommandHandler(repo, notifier).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Ready, outcome.Order.Status())
	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0].Error(), "invalid recipient")
}

func TestLifecycleHandlers_OrderNotFound(t *testing.T) {
	missing := orderIn(t, order.Paid).ID()
	repo, notifier := new(MockOrderRepository), new(MockNotifier)
	repo.On("FindByID", mock.Anything, missing).Return(nil, errs.NewObjectNotFoundError("order", missing))

	cmd, _ := commands.NewCancelOrderCommand(missing)
	_, err := commands.NewCancelOrderCommandHandler(repo, notifier).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrOrderNotFound)
	require.NotErrorIs(t, err, errs.ErrStorageFailed)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestLifecycleHandlers_LoadFailure(t *testing.T) {
	id := orderIn(t, order.Paid).ID()
	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, id).Return(nil, ports.ErrLoadFailed)

	cmd, _ := commands.NewMarkOrderPreparingCommand(id)
	_, err := commands.NewMarkOrderPreparingCommandHandler(repo).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrStorageFailed)
	require.ErrorIs(t, err, ports.ErrLoadFailed)
}

func TestLifecycleHandlers_UpdateNotFoundIsAStorageFailure(t *testing.T) {
	current := orderIn(t, order.Ready)
	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).
		Return(errs.NewObjectNotFoundError("order", current.ID())).Once()

	cmd, _ := commands.NewCompleteOrderCommand(current.ID())
	_, err := commands.NewCompleteOrderCommandHandler(repo).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrStorageFailed)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.NotErrorIs(t, err, errs.ErrOrderNotFound)
}

func TestMarkOrderPreparingCommandHandler_Handle(t *testing.T) {
	cases := []struct {
		from         order.Status
		to           order.Status
		transitioned bool
	}{
		{order.Paid, order.Preparing, true},
		{order.Pending, order.Pending, false},
		{order.Ready, order.Ready, false},
		{order.Cancelled, order.Cancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String(), func(t *testing.T) {
			current := orderIn(t, tc.from)
			repo := new(MockOrderRepository)
			mock.InOrder(
				repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once(),
				repo.On("Update", mock.Anything, inStatus(tc.to)).Return(nil).Once(),
			)

			cmd, _ := commands.NewMarkOrderPreparingCommand(current.ID())
			outcome, err := commands.NewMarkOrderPreparingCommandHandler(repo).Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.Equal(t, tc.transitioned, outcome.Transitioned)
			assert.Equal(t, tc.to, outcome.Order.Status())
			repo.AssertExpectations(t)
		})
	}
}

func TestCompleteOrderCommandHandler_Handle(t *testing.T) {
	current := orderIn(t, order.Ready)
	repo := new(MockOrderRepository)
	repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once()
	repo.On("Update", mock.Anything, inStatus(order.Completed)).Return(nil).Once()

	cmd, _ := commands.NewCompleteOrderCommand(current.ID())
	outcome, err := commands.NewCompleteOrderCommandHandler(repo).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.True(t, outcome.Transitioned)
	assert.Equal(t, order.Completed, outcome.Order.Status())
	repo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	for _, from := range []order.Status{order.Pending, order.Paid, order.Preparing, order.Ready} {
		t.Run(from.String(), func(t *testing.T) {
			current := orderIn(t, from)
			repo, notifier := new(MockOrderRepository), new(MockNotifier)
			mock.InOrder(
				repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once(),
				repo.On("Update", mock.Anything, inStatus(order.Cancelled)).Return(nil).Once(),
				notifier.On("NotifyOrderCancelled", mock.Anything, inStatus(order.Cancelled)).Return(nil).Once(),
			)

			cmd, _ := commands.NewCancelOrderCommand(current.ID())
			outcome, err := commands.NewCancelOrderCommandHandler(repo, notifier).Handle(t.Context(), cmd)

			require.NoError(t, err)
			assert.True(t, outcome.Transitioned)
			repo.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderIsRejected(t *testing.T) {
	current := orderIn(t, order.Completed)
	repo, notifier := new(MockOrderRepository), new(MockNotifier)
	repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once()

	cmd, _ := commands.NewCancelOrderCommand(current.ID())
	_, err := commands.NewCancelOrderCommandHandler(repo, notifier).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrInvalidOrder)
	assert.Equal(t, "invalid order: Cannot cancel completed order", err.Error())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyOrderCancelled", mock.Anything, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	current := orderIn(t, order.Cancelled)
	repo, notifier := new(MockOrderRepository), new(MockNotifier)
	repo.On("FindByID", mock.Anything, current.ID()).Return(current, nil).Once()
	repo.On("Update", mock.Anything, inStatus(order.Cancelled)).Return(nil).Once()

	cmd, _ := commands.NewCancelOrderCommand(current.ID())
	outcome, err := commands.NewCancelOrderCommandHandler(repo, notifier).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.False(t, outcome.Transitioned)
	notifier.AssertNotCalled(t, "NotifyOrderCancelled", mock.Anything, mock.Anything)
}

func TestLifecycleHandlers_InvalidCommand(t *testing.T) {
	repo := new(MockOrderRepository)

	_, err := commands.NewCompleteOrderCommandHandler(repo).Handle(t.Context(), commands.CompleteOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCompleteOrderCommandIsNotConstructed)
	for _, sentinel := range []error{errs.ErrInvalidOrder, errs.ErrPaymentFailed, errs.ErrStorageFailed, errs.ErrOrderNotFound} {
		assert.NotErrorIs(t, err, sentinel)
	}
	repo.AssertExpectations(t)
}
