package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/userlock"
)

// PlaceOrderCommandHandler handles checkout. The order snapshot and the cart
// clear happen in one transaction: once the order exists the cart is empty,
// and on any failure the cart is untouched.
//
// Concurrent checkouts for the same user are serialized with a per-user lock,
// so two requests racing on one cart cannot both snapshot it before either
// clears it.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	userLocks  *userlock.KeyedMutex
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	uowFactory CheckoutUoWFactory,
	userLocks *userlock.KeyedMutex,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		userLocks:  userLocks,
	}
}

// Handle processes the checkout command. Verifies the user exists, reads the
// cart, snapshots its items into a new order in Placed status, persists the
// order and clears the cart in the same transaction.
// Returns ErrCartIsEmpty when the user has no cart or the cart holds no items.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.userLocks.Lock(cmd.UserID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.UserRepository().Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUserID(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrCartIsEmpty
		}
		return err
	}

	if userCart.IsEmpty() {
		return ErrCartIsEmpty
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.UserID(), userCart.Snapshot(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	userCart.Clear()
	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
