package commands

import (
	"context"
	"errors"

	"foodorder/internal/pkg/errs"
)

// RemoveCartItemCommandHandler handles the business logic for removing an
// item from a cart.
type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveCartItemCommandHandler creates a handler for cart remove operations.
func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove command. Verifies the user and the catalog item
// exist. A user without a cart has nothing to remove, so that case returns nil
// without writing anything. Removing an item the cart does not hold also
// succeeds.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

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

	if _, err := uow.FoodItemRepository().Get(ctx, cmd.FoodItemID()); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	userCart, err := cartRepo.GetByUserID(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	if err = userCart.RemoveItem(cmd.FoodItemID()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
