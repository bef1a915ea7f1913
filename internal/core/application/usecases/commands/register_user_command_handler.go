package commands

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/errs"
)

// RegisterUserCommandHandler handles account registration.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Returns ErrUsernameIsTaken when
// an account with the same login name already exists. The username check and
// the insert run in one transaction; the unique index on usernames backstops
// the race between two registrations of the same name.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
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

	userRepo := uow.UserRepository()

	_, err := userRepo.GetByUsername(ctx, cmd.Username())
	switch {
	case err == nil:
		return ErrUsernameIsTaken
	case errors.Is(err, errs.ErrObjectNotFound):
	default:
		return err
	}

	account, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.PasswordHash(), cmd.Role())
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
