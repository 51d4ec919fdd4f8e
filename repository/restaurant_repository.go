package repository

import (
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// List returns restaurants with their country, best rated first.
// countryID nil means no scoping (admin).
func (r *RestaurantRepository) List(countryID *uint) ([]entity.Restaurant, error) {
	q := r.DB.Preload("Country").Order("rating DESC")
	if countryID != nil {
		q = q.Where("country_id = ?", *countryID)
	}
	var out []entity.Restaurant
	err := q.Find(&out).Error
	return out, err
}

// GetWithMenu loads one restaurant with its country and the available
// portion of its menu, grouped by category.
func (r *RestaurantRepository) GetWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.Preload("Country").
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("category, name")
		}).
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// MenuItemCount counts a restaurant's menu items for the list view badge,
// availability aside.
func (r *RestaurantRepository) MenuItemCount(restaurantID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&cnt).Error
	return cnt, err
}
