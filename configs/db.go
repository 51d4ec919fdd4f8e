package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Migrate the schema
	db.AutoMigrate(
		&entity.Country{},
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuItem{},
		&entity.PaymentMethod{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
