package commands

import (
	"context"

	"foodorder/internal/pkg/errs"
)

// DeleteFoodItemCommandHandler handles catalog removals.
type DeleteFoodItemCommandHandler struct {
	uowFactory FoodUoWFactory
}

// NewDeleteFoodItemCommandHandler creates a handler for catalog removals.
func NewDeleteFoodItemCommandHandler(uowFactory FoodUoWFactory) DeleteFoodItemCommandHandler {
	return DeleteFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. Deleting a dish that is not in the
// catalog surfaces ObjectNotFoundError.
func (h *DeleteFoodItemCommandHandler) Handle(ctx context.Context, cmd DeleteFoodItemCommand) error {
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

	deleted, err := uow.FoodItemRepository().Delete(ctx, cmd.FoodItemID())
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewObjectNotFoundError("foodItemID", cmd.FoodItemID())
	}

	return uow.Commit(ctx)
}
