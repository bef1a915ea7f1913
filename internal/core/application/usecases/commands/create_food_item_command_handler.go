package commands

import (
	"context"

	"foodorder/internal/core/domain/model/food"
)

// CreateFoodItemCommandHandler handles catalog additions.
type CreateFoodItemCommandHandler struct {
	uowFactory FoodUoWFactory
}

// NewCreateFoodItemCommandHandler creates a handler for catalog additions.
func NewCreateFoodItemCommandHandler(uowFactory FoodUoWFactory) CreateFoodItemCommandHandler {
	return CreateFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create command and persists the new catalog entry.
func (h *CreateFoodItemCommandHandler) Handle(ctx context.Context, cmd CreateFoodItemCommand) error {
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

	item, err := food.NewFoodItem(
		cmd.FoodItemID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Category(),
		cmd.Image(),
	)
	if err != nil {
		return err
	}

	if err = uow.FoodItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
