package foodrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/food"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// GormFoodItemRepository implements FoodItemRepository using GORM.
type GormFoodItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFoodItemRepository creates a new GORM catalog repository.
func NewGormFoodItemRepository(db *gorm.DB, tracker aggregateTracker) *GormFoodItemRepository {
	return &GormFoodItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry to the database.
func (r *GormFoodItemRepository) Add(ctx context.Context, item *food.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing catalog entry to the database. Select lists every
// mutable column so clearing a description or image actually persists.
func (r *GormFoodItemRepository) Update(ctx context.Context, item *food.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&FoodItemDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "description", "price", "category", "image").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormFoodItemRepository) Get(ctx context.Context, id kernel.UUID) (*food.FoodItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("foodItemID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole catalog sorted by name.
func (r *GormFoodItemRepository) GetAll(ctx context.Context) ([]*food.FoodItem, error) {
	var dtos []FoodItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*food.FoodItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes a catalog entry. The boolean reports whether a row was
// removed.
func (r *GormFoodItemRepository) Delete(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&FoodItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
