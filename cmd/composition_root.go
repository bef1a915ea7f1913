package cmd

import (
	"log/slog"
	"os"
	"time"

	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/jobs"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/userlock"

	"gorm.io/gorm"
)

// defaultTokenTTL applies when JWT_TTL is unset or unparsable.
const defaultTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	tokenService *auth.TokenService
	userLocks    *userlock.KeyedMutex
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	ttl, err := time.ParseDuration(config.JWTTTL)
	if err != nil || ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenService: auth.NewTokenService(config.JWTSecret, ttl),
		userLocks:    userlock.NewKeyedMutex(),
		logger:       slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) TokenService() *auth.TokenService {
	return c.tokenService
}

func (c *CompositionRoot) CreateDataSeeder() *postgres.DataSeeder {
	return postgres.NewDataSeeder(&c.uowFactory)
}

func (c *CompositionRoot) CreateOrderDigestJob() *jobs.OrderDigestJob {
	return jobs.NewOrderDigestJob(c.CreateGetAllOrdersQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.userLocks)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateFoodItemCommandHandler() commands.CreateFoodItemCommandHandler {
	var f commands.FoodUoWFactory = FuncFoodUoWFactory(func() commands.FoodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFoodItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFoodItemCommandHandler() commands.UpdateFoodItemCommandHandler {
	var f commands.FoodUoWFactory = FuncFoodUoWFactory(func() commands.FoodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFoodItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteFoodItemCommandHandler() commands.DeleteFoodItemCommandHandler {
	var f commands.FoodUoWFactory = FuncFoodUoWFactory(func() commands.FoodUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteFoodItemCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartItemsQueryHandler() queries.GetCartItemsQueryHandler {
	return queries.NewGetCartItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllFoodItemsQueryHandler() queries.GetAllFoodItemsQueryHandler {
	return queries.NewGetAllFoodItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByUserQueryHandler() queries.GetOrdersByUserQueryHandler {
	return queries.NewGetOrdersByUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserByUsernameQueryHandler() queries.GetUserByUsernameQueryHandler {
	return queries.NewGetUserByUsernameQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllUsersQueryHandler() queries.GetAllUsersQueryHandler {
	return queries.NewGetAllUsersQueryHandler(c.gormDB)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFoodUoWFactory func() commands.FoodUoW

func (f FuncFoodUoWFactory) Create() commands.FoodUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
