package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// AddCartItemCommandHandler handles the business logic for adding an item to
// a cart. Carts are created lazily: a user's first add creates the cart and
// puts the item in it within the same transaction.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart add operations.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add command. Verifies the user and the catalog item
// exist, then adds the item to the user's cart, creating the cart first if
// the user does not have one yet. Re-adding a held item succeeds without
// changing the cart.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	switch {
	case err == nil:
		if err = userCart.AddItem(cmd.FoodItemID()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, userCart); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		userCart, err = cart.NewCart(kernel.NewUUID(), cmd.UserID())
		if err != nil {
			return err
		}
		if err = userCart.AddItem(cmd.FoodItemID()); err != nil {
			return err
		}
		if err = cartRepo.Add(ctx, userCart); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
