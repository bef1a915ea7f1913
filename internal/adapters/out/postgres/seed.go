package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/user"
	"foodorder/internal/pkg/auth"
	"foodorder/internal/pkg/errs"
)

// DataSeeder loads the demo accounts and starter menu on first boot. Seeding
// is idempotent: an account or dish that already exists is left alone, so
// restarts never duplicate rows.
type DataSeeder struct {
	factory *GormUnitOfWorkFactory
}

// NewDataSeeder creates a seeder over the given unit of work factory.
func NewDataSeeder(factory *GormUnitOfWorkFactory) *DataSeeder {
	return &DataSeeder{factory: factory}
}

type seedUser struct {
	username string
	password string
	role     user.Role
}

type seedDish struct {
	name        string
	description string
	price       int64
	category    string
	image       string
}

func seedUsers() []seedUser {
	return []seedUser{
		{username: "admin", password: "admin123", role: user.Admin},
		{username: "john", password: "john123", role: user.Customer},
	}
}

func seedDishes() []seedDish {
	return []seedDish{
		{"Margherita Pizza", "Classic delight with 100% real mozzarella cheese", 249, "Pizza", "margherita.png"},
		{"Veg Burger", "Crunchy patty with fresh lettuce and house sauce", 149, "Burgers", "veg-burger.png"},
		{"Paneer Tikka", "Char-grilled cottage cheese in spiced marinade", 199, "Starters", "paneer-tikka.png"},
		{"Fried Rice", "Wok-tossed rice with seasonal vegetables", 179, "Mains", "fried-rice.png"},
		{"Choco Lava Cake", "Warm cake with a molten chocolate center", 99, "Desserts", "choco-lava.png"},
	}
}

// Seed inserts the demo accounts and the starter menu inside one
// transaction.
func (s *DataSeeder) Seed(ctx context.Context) error {
	uow := s.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	for _, su := range seedUsers() {
		_, err := userRepo.GetByUsername(ctx, su.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		hash, err := auth.HashPassword(su.password)
		if err != nil {
			return err
		}

		account, err := user.NewUser(kernel.NewUUID(), su.username, hash, su.role)
		if err != nil {
			return err
		}

		if err = userRepo.Add(ctx, account); err != nil {
			return fmt.Errorf("seed user %s: %w", su.username, err)
		}
	}

	foodRepo := uow.FoodItemRepository()
	existing, err := foodRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(existing))
	for _, item := range existing {
		present[item.Name()] = true
	}

	for _, sd := range seedDishes() {
		if present[sd.name] {
			continue
		}

		item, itemErr := food.NewFoodItem(
			kernel.NewUUID(),
			sd.name,
			sd.description,
			decimal.NewFromInt(sd.price),
			sd.category,
			sd.image,
		)
		if itemErr != nil {
			return itemErr
		}

		if err = foodRepo.Add(ctx, item); err != nil {
			return fmt.Errorf("seed dish %s: %w", sd.name, err)
		}
	}

	return uow.Commit(ctx)
}
