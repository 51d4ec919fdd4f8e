package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
	"github.com/GouravKumar19/slooze/repository"
	"github.com/GouravKumar19/slooze/utils"
)

// fixture is a small two-country world: one admin, a manager and a member
// per country, one restaurant per country, and default payment methods for
// everyone except travis.
type fixture struct {
	db *gorm.DB

	india   entity.Country
	america entity.Country

	admin     entity.User // US
	managerIN entity.User
	managerUS entity.User
	memberIN  entity.User
	travis    entity.User // US member, no payment method

	spiceGarden entity.Restaurant // IN
	burgerBarn  entity.Restaurant // US

	butterChicken entity.MenuItem // IN, 100
	garlicNaan    entity.MenuItem // IN, 50
	paneerTikka   entity.MenuItem // IN, 90
	cheeseburger  entity.MenuItem // US, 12.99
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Country{}, &entity.User{}, &entity.Restaurant{}, &entity.MenuItem{},
		&entity.PaymentMethod{}, &entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	f := &fixture{db: db}

	f.india = entity.Country{Name: "India", Code: "IN"}
	f.america = entity.Country{Name: "America", Code: "US"}
	db.Create(&f.india)
	db.Create(&f.america)

	f.admin = entity.User{Name: "Nick Fury", Email: "nick.fury@shield.com", Role: entity.RoleAdmin, CountryID: f.america.ID}
	f.managerIN = entity.User{Name: "Captain Marvel", Email: "captain.marvel@shield.com", Role: entity.RoleManager, CountryID: f.india.ID}
	f.managerUS = entity.User{Name: "Captain America", Email: "captain.america@shield.com", Role: entity.RoleManager, CountryID: f.america.ID}
	f.memberIN = entity.User{Name: "Thanos", Email: "thanos@shield.com", Role: entity.RoleMember, CountryID: f.india.ID}
	f.travis = entity.User{Name: "Travis", Email: "travis@shield.com", Role: entity.RoleMember, CountryID: f.america.ID}
	for _, u := range []*entity.User{&f.admin, &f.managerIN, &f.managerUS, &f.memberIN, &f.travis} {
		db.Create(u)
	}

	for _, pm := range []*entity.PaymentMethod{
		{UserID: f.admin.ID, Type: "CREDIT_CARD", LastFour: "4242", IsDefault: true},
		{UserID: f.managerIN.ID, Type: "UPI", LastFour: "9876", IsDefault: true},
		{UserID: f.managerUS.ID, Type: "DEBIT_CARD", LastFour: "1234", IsDefault: true},
		{UserID: f.memberIN.ID, Type: "UPI", LastFour: "1111", IsDefault: true},
	} {
		db.Create(pm)
	}

	f.spiceGarden = entity.Restaurant{Name: "Spice Garden", Cuisine: "North Indian", Rating: 4.5, CountryID: f.india.ID}
	f.burgerBarn = entity.Restaurant{Name: "Burger Barn", Cuisine: "American", Rating: 4.4, CountryID: f.america.ID}
	db.Create(&f.spiceGarden)
	db.Create(&f.burgerBarn)

	f.butterChicken = entity.MenuItem{Name: "Butter Chicken", Price: 100, Category: "Mains", RestaurantID: f.spiceGarden.ID, IsAvailable: true}
	f.garlicNaan = entity.MenuItem{Name: "Garlic Naan", Price: 50, Category: "Breads", RestaurantID: f.spiceGarden.ID, IsAvailable: true, IsVegetarian: true}
	f.paneerTikka = entity.MenuItem{Name: "Paneer Tikka", Price: 90, Category: "Mains", RestaurantID: f.spiceGarden.ID, IsAvailable: true, IsVegetarian: true}
	f.cheeseburger = entity.MenuItem{Name: "Classic Cheeseburger", Price: 12.99, Category: "Burgers", RestaurantID: f.burgerBarn.ID, IsAvailable: true}
	for _, m := range []*entity.MenuItem{&f.butterChicken, &f.garlicNaan, &f.paneerTikka, &f.cheeseburger} {
		db.Create(m)
	}

	return f
}

func (f *fixture) orderService() *OrderService {
	return NewOrderService(f.db, repository.NewOrderRepository(f.db), repository.NewPaymentRepository(f.db))
}

func (f *fixture) paymentService() *PaymentService {
	return NewPaymentService(f.db, repository.NewPaymentRepository(f.db))
}

func claimsFor(u entity.User) *utils.Claims {
	return &utils.Claims{
		UserID:    u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CountryID: u.CountryID,
	}
}

// defaultPaymentMethodID looks up the user's default method id.
func (f *fixture) defaultPaymentMethodID(t *testing.T, userID uint) uint {
	t.Helper()
	var pm entity.PaymentMethod
	if err := f.db.Where("user_id = ? AND is_default = ?", userID, true).First(&pm).Error; err != nil {
		t.Fatalf("default payment method for user %d: %v", userID, err)
	}
	return pm.ID
}
