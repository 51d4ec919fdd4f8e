package repository

import (
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) GetWithCountry(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Country").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ListAll returns every user with its country, for the demo login picker.
func (r *UserRepository) ListAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Preload("Country").
		Order("role ASC").Order("name ASC").
		Find(&users).Error
	return users, err
}
