package commands_test

import (
	"errors"
	"sync"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/userlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	cmd, err := commands.NewPlaceOrderCommand(orderID, userID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, userID, cmd.UserID())
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	itemA := kernel.NewUUID()
	itemB := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(orderID, userID)

	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)
	require.NoError(t, userCart.AddItem(itemA))
	require.NoError(t, userCart.AddItem(itemB))

	userRepo := new(MockUserRepository)
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(testUser(t, userID), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUserID", ctx, userID).Return(userCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		cartRepo.On("Update", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, userlock.NewKeyedMutex())
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	placed := orderRepo.Calls[0].Arguments[1].(*order.Order)
	assert.Equal(t, orderID, placed.ID())
	assert.Equal(t, userID, placed.UserID())
	assert.Equal(t, []kernel.UUID{itemA, itemB}, placed.ItemIDs())
	assert.Equal(t, order.Placed, placed.Status())
	assert.True(t, userCart.IsEmpty())

	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NoCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), userID)

	userRepo := new(MockUserRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(testUser(t, userID), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUserID", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, userlock.NewKeyedMutex())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), userID)

	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(testUser(t, userID), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUserID", ctx, userID).Return(userCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, userlock.NewKeyedMutex())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestPlaceOrderCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), userID)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, userlock.NewKeyedMutex())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPlaceOrderCommandHandler_Handle_AddOrderError(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewPlaceOrderCommand(kernel.NewUUID(), userID)

	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)
	require.NoError(t, userCart.AddItem(kernel.NewUUID()))

	userRepo := new(MockUserRepository)
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, userID).Return(testUser(t, userID), nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUserID", ctx, userID).Return(userCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("add error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, userlock.NewKeyedMutex())
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.EqualError(t, err, "add error")
	cartRepo.AssertNotCalled(t, "Update")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockCheckoutUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory, userlock.NewKeyedMutex())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

// Two checkouts for the same user racing on one cart: the per-user lock
// serializes them, so the loser observes the cleared cart and fails with
// ErrCartIsEmpty instead of double-ordering.
func TestPlaceOrderCommandHandler_Handle_ConcurrentCheckoutsSameUser(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)
	require.NoError(t, userCart.AddItem(kernel.NewUUID()))

	account := testUser(t, userID)

	userRepo := new(MockUserRepository)
	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("UserRepository").Return(userRepo)
	uow.On("CartRepository").Return(cartRepo)
	uow.On("OrderRepository").Return(orderRepo)
	userRepo.On("Get", mock.Anything, userID).Return(account, nil)
	cartRepo.On("GetByUserID", mock.Anything, userID).Return(userCart, nil)
	cartRepo.On("Update", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewPlaceOrderCommandHandler(factory, userlock.NewKeyedMutex())

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, cmdErr := commands.NewPlaceOrderCommand(kernel.NewUUID(), userID)
			require.NoError(t, cmdErr)
			results[i] = h.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	var placed, empty int
	for _, res := range results {
		switch {
		case res == nil:
			placed++
		case errors.Is(res, commands.ErrCartIsEmpty):
			empty++
		default:
			t.Fatalf("unexpected checkout error: %v", res)
		}
	}
	assert.Equal(t, 1, placed)
	assert.Equal(t, 1, empty)
	orderRepo.AssertNumberOfCalls(t, "Add", 1)
}
