package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/generated/servers"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Handlers bundles the command and query handlers the HTTP server dispatches
// to. All fields are required.
type Handlers struct {
	// Command handlers
	RegisterUser      commands.RegisterUserCommandHandler
	AddCartItem       commands.AddCartItemCommandHandler
	RemoveCartItem    commands.RemoveCartItemCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateFoodItem    commands.CreateFoodItemCommandHandler
	UpdateFoodItem    commands.UpdateFoodItemCommandHandler
	DeleteFoodItem    commands.DeleteFoodItemCommandHandler

	// Query handlers
	GetCartItems      queries.GetCartItemsQueryHandler
	GetAllFoodItems   queries.GetAllFoodItemsQueryHandler
	GetAllOrders      queries.GetAllOrdersQueryHandler
	GetOrderByID      queries.GetOrderByIDQueryHandler
	GetOrdersByUser   queries.GetOrdersByUserQueryHandler
	GetUserByUsername queries.GetUserByUsernameQueryHandler
	GetAllUsers       queries.GetAllUsersQueryHandler
}

// Server implements the generated ServerInterface. It binds requests,
// enforces role checks on administrative endpoints, dispatches to the
// application layer and maps domain errors onto HTTP statuses.
type Server struct {
	tokens   *auth.TokenService
	handlers Handlers
}

// NewServer creates the HTTP server with its token service and handler set.
func NewServer(tokens *auth.TokenService, handlers Handlers) *Server {
	return &Server{
		tokens:   tokens,
		handlers: handlers,
	}
}

// RegisterUser handles POST /api/v1/auth/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body servers.RegisterRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	role := user.Customer
	if body.Role != nil {
		parsed, err := user.RoleFromString(*body.Role)
		if err != nil {
			return errorJSON(ctx, http.StatusBadRequest, "Unknown role: "+*body.Role)
		}
		role = parsed
	}
	// Registration is public, so only an authenticated admin may mint
	// further admin accounts.
	if role == user.Admin && !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Only an admin may create admin accounts")
	}

	hash, err := auth.HashPassword(body.Password)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid password")
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), body.Username, hash, role)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid registration data: "+err.Error())
	}

	if err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.User{
		Id:       cmd.UserID().Bytes(),
		Username: cmd.Username(),
		Role:     cmd.Role().String(),
	})
}

// LoginUser handles POST /api/v1/auth/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	var body servers.LoginRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	query, err := queries.NewGetUserByUsernameQuery(body.Username)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Username is required")
	}

	account, err := s.handlers.GetUserByUsername.Handle(ctx.Request().Context(), query)
	if err != nil {
		// Unknown account and wrong password are indistinguishable to
		// the caller.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusUnauthorized, "Invalid username or password")
		}
		return mapError(ctx, err)
	}

	if !auth.CheckPassword(account.PasswordHash, body.Password) {
		return errorJSON(ctx, http.StatusUnauthorized, "Invalid username or password")
	}

	token, err := s.tokens.Issue(account.ID.String(), account.Username, account.Role)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to issue token")
	}

	return ctx.JSON(http.StatusOK, servers.TokenResponse{
		Token: token,
		User: servers.User{
			Id:       account.ID.Bytes(),
			Username: account.Username,
			Role:     account.Role,
		},
	})
}

// GetUsers handles GET /api/v1/users - lists all accounts (admin only).
func (s *Server) GetUsers(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Admin role required")
	}

	accounts, err := s.handlers.GetAllUsers.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.User, len(accounts))
	for i, account := range accounts {
		response[i] = servers.User{
			Id:       account.ID.Bytes(),
			Username: account.Username,
			Role:     account.Role,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetFoodItems handles GET /api/v1/food - lists the catalog. Public.
func (s *Server) GetFoodItems(ctx echo.Context) error {
	items, err := s.handlers.GetAllFoodItems.Handle(ctx.Request().Context(), queries.NewGetAllFoodItemsQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.FoodItem, len(items))
	for i, item := range items {
		response[i] = servers.FoodItem{
			Id:          item.ID.Bytes(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.InexactFloat64(),
			Category:    item.Category,
			Image:       item.Image,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateFoodItem handles POST /api/v1/food (admin only).
func (s *Server) CreateFoodItem(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Admin role required")
	}

	var body servers.NewFoodItem
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateFoodItemCommand(
		kernel.NewUUID(),
		body.Name,
		body.Description,
		decimal.NewFromFloat(body.Price),
		body.Category,
		body.Image,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid food item data: "+err.Error())
	}

	if err := s.handlers.CreateFoodItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.FoodItem{
		Id:          cmd.FoodItemID().Bytes(),
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Price:       cmd.Price().InexactFloat64(),
		Category:    cmd.Category(),
		Image:       cmd.Image(),
	})
}

// UpdateFoodItem handles PUT /api/v1/food/{foodItemId} (admin only).
func (s *Server) UpdateFoodItem(ctx echo.Context, foodItemId openapi_types.UUID) error {
	if !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Admin role required")
	}

	var body servers.NewFoodItem
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	itemID, err := kernel.UUIDFromBytes(foodItemId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid food item id")
	}

	cmd, err := commands.NewUpdateFoodItemCommand(
		itemID,
		body.Name,
		body.Description,
		decimal.NewFromFloat(body.Price),
		body.Category,
		body.Image,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid food item data: "+err.Error())
	}

	if err := s.handlers.UpdateFoodItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.FoodItem{
		Id:          foodItemId,
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Price:       cmd.Price().InexactFloat64(),
		Category:    cmd.Category(),
		Image:       cmd.Image(),
	})
}

// DeleteFoodItem handles DELETE /api/v1/food/{foodItemId} (admin only).
func (s *Server) DeleteFoodItem(ctx echo.Context, foodItemId openapi_types.UUID) error {
	if !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Admin role required")
	}

	itemID, err := kernel.UUIDFromBytes(foodItemId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid food item id")
	}

	cmd, err := commands.NewDeleteFoodItemCommand(itemID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.handlers.DeleteFoodItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var body servers.AddCartItemRequest
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}
	if !isSelfOrAdmin(ctx, body.UserId) {
		return errorJSON(ctx, http.StatusForbidden, "Operation allowed only on own cart")
	}

	userID, err := kernel.UUIDFromBytes(body.UserId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id")
	}
	foodItemID, err := kernel.UUIDFromBytes(body.FoodItemId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid food item id")
	}

	cmd, err := commands.NewAddCartItemCommand(userID, foodItemID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondCartItems(ctx, userID)
}

// RemoveCartItem handles DELETE /api/v1/users/{userId}/cart/items/{foodItemId}.
func (s *Server) RemoveCartItem(ctx echo.Context, userId openapi_types.UUID, foodItemId openapi_types.UUID) error {
	if !isSelfOrAdmin(ctx, userId) {
		return errorJSON(ctx, http.StatusForbidden, "Operation allowed only on own cart")
	}

	userID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id")
	}
	foodItemID, err := kernel.UUIDFromBytes(foodItemId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid food item id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(userID, foodItemID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return s.respondCartItems(ctx, userID)
}

// GetCartItems handles GET /api/v1/users/{userId}/cart/items.
func (s *Server) GetCartItems(ctx echo.Context, userId openapi_types.UUID) error {
	if !isSelfOrAdmin(ctx, userId) {
		return errorJSON(ctx, http.StatusForbidden, "Operation allowed only on own cart")
	}

	userID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id")
	}

	return s.respondCartItems(ctx, userID)
}

// Checkout handles POST /api/v1/users/{userId}/checkout - places an order
// from the current cart contents.
func (s *Server) Checkout(ctx echo.Context, userId openapi_types.UUID) error {
	if !isSelfOrAdmin(ctx, userId) {
		return errorJSON(ctx, http.StatusForbidden, "Operation allowed only on own cart")
	}

	userID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}
	placed, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(placed))
}

// GetOrders handles GET /api/v1/orders - lists every order (admin only).
func (s *Server) GetOrders(ctx echo.Context) error {
	if !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Admin role required")
	}

	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderById handles GET /api/v1/orders/{orderId}. Customers may read only
// their own orders.
func (s *Server) GetOrderById(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	resp, err := s.handlers.GetOrderByID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	if !isSelfOrAdmin(ctx, resp.UserID.Bytes()) {
		return errorJSON(ctx, http.StatusForbidden, "Operation allowed only on own orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// GetUserOrders handles GET /api/v1/users/{userId}/orders.
func (s *Server) GetUserOrders(ctx echo.Context, userId openapi_types.UUID) error {
	if !isSelfOrAdmin(ctx, userId) {
		return errorJSON(ctx, http.StatusForbidden, "Operation allowed only on own orders")
	}

	userID, err := kernel.UUIDFromBytes(userId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id")
	}

	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.handlers.GetOrdersByUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PUT /api/v1/orders/{orderId}/status (admin only).
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	if !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Admin role required")
	}

	var body servers.OrderStatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Unknown status: "+body.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} (admin only).
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	if !isAdmin(ctx) {
		return errorJSON(ctx, http.StatusForbidden, "Admin role required")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondCartItems renders the current cart contents for the user. Cart reads
// never fail on a missing cart, they return an empty list.
func (s *Server) respondCartItems(ctx echo.Context, userID kernel.UUID) error {
	query, err := queries.NewGetCartItemsQuery(userID)
	if err != nil {
		return mapError(ctx, err)
	}

	items, err := s.handlers.GetCartItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	response := make([]servers.FoodItem, len(items))
	for i, item := range items {
		response[i] = servers.FoodItem{
			Id:          item.ID.Bytes(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.InexactFloat64(),
			Category:    item.Category,
			Image:       item.Image,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func toOrderResponse(o queries.GetAllOrdersQueryResponse) servers.Order {
	itemIDs := make([]openapi_types.UUID, len(o.ItemIDs))
	for i, id := range o.ItemIDs {
		itemIDs[i] = id.Bytes()
	}
	return servers.Order{
		Id:          o.ID.Bytes(),
		UserId:      o.UserID.Bytes(),
		Username:    o.Username,
		FoodItemIds: itemIDs,
		CreatedAt:   o.CreatedAt,
		Status:      o.Status,
	}
}

// isAdmin reports whether the request carries admin claims.
func isAdmin(ctx echo.Context) bool {
	claims := ClaimsFromContext(ctx)
	return claims != nil && claims.Role == user.Admin.String()
}

// isSelfOrAdmin reports whether the request is made by the account owning
// userID, or by an admin.
func isSelfOrAdmin(ctx echo.Context, userID openapi_types.UUID) bool {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return false
	}
	return claims.Role == user.Admin.String() || claims.Subject == userID.String()
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

// mapError translates application and domain errors onto HTTP statuses.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrCartIsEmpty):
		return errorJSON(ctx, http.StatusUnprocessableEntity, "Cart is empty")
	case errors.Is(err, commands.ErrUsernameIsTaken):
		return errorJSON(ctx, http.StatusConflict, "Username is already taken")
	case errors.Is(err, order.ErrStatusTransitionIsInvalid):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
