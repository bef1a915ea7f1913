package commands

import (
	"context"

	"foodorder/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles administrative order removal.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command. The repository reports whether a row
// was removed; deleting a missing order is surfaced as ObjectNotFoundError
// rather than silently succeeding.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	deleted, err := uow.OrderRepository().Delete(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	return uow.Commit(ctx)
}
