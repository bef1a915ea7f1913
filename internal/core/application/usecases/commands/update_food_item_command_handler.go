package commands

import (
	"context"
)

// UpdateFoodItemCommandHandler handles catalog edits.
type UpdateFoodItemCommandHandler struct {
	uowFactory FoodUoWFactory
}

// NewUpdateFoodItemCommandHandler creates a handler for catalog edits.
func NewUpdateFoodItemCommandHandler(uowFactory FoodUoWFactory) UpdateFoodItemCommandHandler {
	return UpdateFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Loading the entry first means editing
// a missing dish surfaces ObjectNotFoundError instead of inserting one.
func (h *UpdateFoodItemCommandHandler) Handle(ctx context.Context, cmd UpdateFoodItemCommand) error {
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

	foodRepo := uow.FoodItemRepository()
	item, err := foodRepo.Get(ctx, cmd.FoodItemID())
	if err != nil {
		return err
	}

	if err = item.Update(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.Image()); err != nil {
		return err
	}

	if err = foodRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
