package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/cartrepo"
	"foodorder/internal/adapters/out/postgres/foodrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker without recording
// anything; query tests only need the repositories for seeding.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetCartItemsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCartItemsQueryHandler
	cartRepo  *cartrepo.GormCartRepository
	foodRepo  *foodrepo.GormFoodItemRepository
}

func (suite *GetCartItemsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&cartrepo.CartDTO{}, &foodrepo.FoodItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCartItemsQueryHandler(db)
	suite.cartRepo = cartrepo.NewGormCartRepository(db, noopTracker{})
	suite.foodRepo = foodrepo.NewGormFoodItemRepository(db, noopTracker{})
}

func (suite *GetCartItemsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCartItemsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts, food_items").Error)
}

func (suite *GetCartItemsQueryHandlerTestSuite) TestHandle_NoCart_ReturnsEmptySlice() {
	query, err := queries.NewGetCartItemsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	items, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(items)
	suite.Empty(items)
}

func (suite *GetCartItemsQueryHandlerTestSuite) TestHandle_KeepsInsertionOrder() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	pizza := suite.seedDish("Margherita Pizza", 249)
	burger := suite.seedDish("Veg Burger", 149)
	cake := suite.seedDish("Choco Lava Cake", 99)

	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	suite.Require().NoError(err)
	suite.Require().NoError(userCart.AddItem(cake.ID()))
	suite.Require().NoError(userCart.AddItem(pizza.ID()))
	suite.Require().NoError(userCart.AddItem(burger.ID()))
	suite.Require().NoError(suite.cartRepo.Add(ctx, userCart))

	query, err := queries.NewGetCartItemsQuery(userID)
	suite.Require().NoError(err)

	items, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(items, 3)
	suite.Equal("Choco Lava Cake", items[0].Name)
	suite.Equal("Margherita Pizza", items[1].Name)
	suite.Equal("Veg Burger", items[2].Name)
	suite.True(decimal.NewFromInt(99).Equal(items[0].Price))
}

func (suite *GetCartItemsQueryHandlerTestSuite) TestHandle_SkipsDeletedCatalogEntries() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	pizza := suite.seedDish("Margherita Pizza", 249)
	burger := suite.seedDish("Veg Burger", 149)

	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	suite.Require().NoError(err)
	suite.Require().NoError(userCart.AddItem(pizza.ID()))
	suite.Require().NoError(userCart.AddItem(burger.ID()))
	suite.Require().NoError(suite.cartRepo.Add(ctx, userCart))

	deleted, err := suite.foodRepo.Delete(ctx, pizza.ID())
	suite.Require().NoError(err)
	suite.Require().True(deleted)

	query, err := queries.NewGetCartItemsQuery(userID)
	suite.Require().NoError(err)

	items, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Veg Burger", items[0].Name)
}

func (suite *GetCartItemsQueryHandlerTestSuite) seedDish(name string, price int64) *food.FoodItem {
	item, err := food.NewFoodItem(
		kernel.NewUUID(), name, "", decimal.NewFromInt(price), "", "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.foodRepo.Add(context.Background(), item))
	return item
}

func TestGetCartItemsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCartItemsQueryHandlerTestSuite))
}
