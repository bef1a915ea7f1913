package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"foodorder/cmd"
	foodhttp "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/cartrepo"
	"foodorder/internal/adapters/out/postgres/foodrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if err := app.CreateDataSeeder().Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	digestJob := app.CreateOrderDigestJob()
	if err := digestJob.Start(); err != nil {
		log.Fatalf("Failed to start order digest job: %v", err)
	}
	defer digestJob.Stop()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:  goDotEnvVariable("JWT_SECRET"),
		JWTTTL:     goDotEnvVariable("JWT_TTL"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBPort,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func mustMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&foodrepo.FoodItemDTO{},
		&cartrepo.CartDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	specJSON := mustLoadOpenAPISpec()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, specJSON)
	})

	e.Use(foodhttp.JWTAuthentication(app.TokenService()))

	server := foodhttp.NewServer(app.TokenService(), foodhttp.Handlers{
		RegisterUser:      app.CreateRegisterUserCommandHandler(),
		AddCartItem:       app.CreateAddCartItemCommandHandler(),
		RemoveCartItem:    app.CreateRemoveCartItemCommandHandler(),
		PlaceOrder:        app.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus: app.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:       app.CreateDeleteOrderCommandHandler(),
		CreateFoodItem:    app.CreateCreateFoodItemCommandHandler(),
		UpdateFoodItem:    app.CreateUpdateFoodItemCommandHandler(),
		DeleteFoodItem:    app.CreateDeleteFoodItemCommandHandler(),

		GetCartItems:      app.CreateGetCartItemsQueryHandler(),
		GetAllFoodItems:   app.CreateGetAllFoodItemsQueryHandler(),
		GetAllOrders:      app.CreateGetAllOrdersQueryHandler(),
		GetOrderByID:      app.CreateGetOrderByIDQueryHandler(),
		GetOrdersByUser:   app.CreateGetOrdersByUserQueryHandler(),
		GetUserByUsername: app.CreateGetUserByUsernameQueryHandler(),
		GetAllUsers:       app.CreateGetAllUsersQueryHandler(),
	})

	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

func mustLoadOpenAPISpec() []byte {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("api/openapi.yml")
	if err != nil {
		log.Fatalf("Failed to load OpenAPI document: %v", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		log.Fatalf("OpenAPI document is invalid: %v", err)
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		log.Fatalf("Failed to render OpenAPI document: %v", err)
	}
	return specJSON
}
