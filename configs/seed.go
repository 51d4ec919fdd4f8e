package configs

import (
	"log"

	"github.com/GouravKumar19/slooze/entity"
)

// SeedDemoData loads the demo dataset: two countries, six users, their
// default payment methods and six restaurants with menus. Idempotent —
// skipped when countries already exist.
func SeedDemoData() error {
	var cnt int64
	if err := db.Model(&entity.Country{}).Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	india := entity.Country{Name: "India", Code: "IN"}
	america := entity.Country{Name: "America", Code: "US"}
	if err := db.Create(&india).Error; err != nil {
		return err
	}
	if err := db.Create(&america).Error; err != nil {
		return err
	}

	users := []entity.User{
		{Name: "Nick Fury", Email: "nick.fury@shield.com", Role: entity.RoleAdmin, CountryID: america.ID},
		{Name: "Captain Marvel", Email: "captain.marvel@shield.com", Role: entity.RoleManager, CountryID: india.ID},
		{Name: "Captain America", Email: "captain.america@shield.com", Role: entity.RoleManager, CountryID: america.ID},
		{Name: "Thanos", Email: "thanos@shield.com", Role: entity.RoleMember, CountryID: india.ID},
		{Name: "Thor", Email: "thor@shield.com", Role: entity.RoleMember, CountryID: india.ID},
		{Name: "Travis", Email: "travis@shield.com", Role: entity.RoleMember, CountryID: america.ID},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	methods := []entity.PaymentMethod{
		{UserID: users[0].ID, Type: "CREDIT_CARD", LastFour: "4242", IsDefault: true},
		{UserID: users[1].ID, Type: "UPI", LastFour: "9876", IsDefault: true},
		{UserID: users[2].ID, Type: "DEBIT_CARD", LastFour: "1234", IsDefault: true},
	}
	if err := db.Create(&methods).Error; err != nil {
		return err
	}

	restaurants := []entity.Restaurant{
		{
			Name:        "Spice Garden",
			Description: "Authentic North Indian cuisine with a modern twist. Famous for our butter chicken and naan.",
			Image:       "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=800",
			Cuisine:     "North Indian",
			Rating:      4.5,
			CountryID:   india.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Butter Chicken", Description: "Tender chicken in creamy tomato-based curry", Price: 350, Category: "Main Course", IsAvailable: true},
				{Name: "Paneer Tikka Masala", Description: "Grilled cottage cheese in spiced gravy", Price: 280, Category: "Main Course", IsVegetarian: true, IsAvailable: true},
				{Name: "Garlic Naan", Description: "Fresh baked bread with garlic butter", Price: 60, Category: "Breads", IsVegetarian: true, IsAvailable: true},
				{Name: "Dal Makhani", Description: "Slow-cooked black lentils in creamy sauce", Price: 220, Category: "Main Course", IsVegetarian: true, IsAvailable: true},
			},
		},
		{
			Name:        "Dosa Plaza",
			Description: "South Indian specialities served all day.",
			Image:       "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=800",
			Cuisine:     "South Indian",
			Rating:      4.3,
			CountryID:   india.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Masala Dosa", Description: "Crispy crepe with spiced potato filling", Price: 120, Category: "Dosas", IsVegetarian: true, IsAvailable: true},
				{Name: "Idli Sambhar", Description: "Steamed rice cakes with lentil soup", Price: 80, Category: "Breakfast", IsVegetarian: true, IsAvailable: true},
				{Name: "Mysore Bonda", Description: "Crispy lentil fritters", Price: 60, Category: "Snacks", IsVegetarian: true, IsAvailable: true},
				{Name: "Filter Coffee", Description: "Traditional South Indian coffee", Price: 40, Category: "Beverages", IsVegetarian: true, IsAvailable: true},
			},
		},
		{
			Name:        "Biryani House",
			Description: "Hyderabadi dum biryani cooked in sealed handis.",
			Image:       "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=800",
			Cuisine:     "Hyderabadi",
			Rating:      4.7,
			CountryID:   india.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Chicken Dum Biryani", Description: "Aromatic rice with tender chicken and spices", Price: 320, Category: "Biryani", IsAvailable: true},
				{Name: "Mutton Biryani", Description: "Slow-cooked lamb with basmati rice", Price: 380, Category: "Biryani", IsAvailable: true},
				{Name: "Veg Biryani", Description: "Mixed vegetables with fragrant rice", Price: 240, Category: "Biryani", IsVegetarian: true, IsAvailable: true},
				{Name: "Mirchi Ka Salan", Description: "Spicy green chili curry", Price: 120, Category: "Sides", IsVegetarian: true, IsAvailable: true},
			},
		},
		{
			Name:        "Burger Barn",
			Description: "Classic American burgers made with 100% Angus beef and fresh ingredients.",
			Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=800",
			Cuisine:     "American",
			Rating:      4.4,
			CountryID:   america.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Classic Cheeseburger", Description: "Angus beef patty with cheddar cheese", Price: 12.99, Category: "Burgers", IsAvailable: true},
				{Name: "Bacon BBQ Burger", Description: "Beef patty with crispy bacon and BBQ sauce", Price: 14.99, Category: "Burgers", IsAvailable: true},
				{Name: "Veggie Burger", Description: "Plant-based patty with fresh toppings", Price: 11.99, Category: "Burgers", IsVegetarian: true, IsAvailable: true},
				{Name: "Loaded Fries", Description: "Crispy fries with cheese and bacon bits", Price: 6.99, Category: "Sides", IsAvailable: true},
			},
		},
		{
			Name:        "Pizza Palace",
			Description: "New York style pizzas with hand-tossed dough and premium toppings.",
			Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800",
			Cuisine:     "Italian-American",
			Rating:      4.6,
			CountryID:   america.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Pepperoni Supreme", Description: "Classic pepperoni with mozzarella", Price: 18.99, Category: "Pizza", IsAvailable: true},
				{Name: "Margherita", Description: "Fresh tomatoes, basil, and mozzarella", Price: 15.99, Category: "Pizza", IsVegetarian: true, IsAvailable: true},
				{Name: "BBQ Chicken Pizza", Description: "Grilled chicken with tangy BBQ sauce", Price: 19.99, Category: "Pizza", IsAvailable: true},
				{Name: "Garlic Knots", Description: "Buttery garlic bread knots", Price: 5.99, Category: "Sides", IsVegetarian: true, IsAvailable: true},
			},
		},
		{
			Name:        "Steak Station",
			Description: "Premium steakhouse featuring USDA Prime cuts and classic American sides.",
			Image:       "https://images.unsplash.com/photo-1600891964092-4316c288032e?w=800",
			Cuisine:     "Steakhouse",
			Rating:      4.8,
			CountryID:   america.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Ribeye Steak", Description: "16oz USDA Prime ribeye, grilled to perfection", Price: 45.99, Category: "Steaks", IsAvailable: true},
				{Name: "Filet Mignon", Description: "8oz tender filet with herb butter", Price: 52.99, Category: "Steaks", IsAvailable: true},
				{Name: "Caesar Salad", Description: "Romaine lettuce with classic Caesar dressing", Price: 12.99, Category: "Sides", IsVegetarian: true, IsAvailable: true},
				{Name: "Loaded Baked Potato", Description: "Baked potato with cheese, bacon and sour cream", Price: 8.99, Category: "Sides", IsAvailable: true},
			},
		},
	}
	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}

	log.Printf("seeded demo data: %d users, %d restaurants", len(users), len(restaurants))
	return nil
}
