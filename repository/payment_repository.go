package repository

import (
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

// ListForUser returns the user's payment methods, default first.
func (r *PaymentRepository) ListForUser(userID uint) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	err := r.DB.Where("user_id = ?", userID).
		Order("is_default DESC").Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) Get(tx *gorm.DB, id uint) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	if err := tx.First(&pm, id).Error; err != nil {
		return nil, err
	}
	return &pm, nil
}

// GetDefaultForUser finds the user's default method,
// gorm.ErrRecordNotFound when the user has none.
func (r *PaymentRepository) GetDefaultForUser(tx *gorm.DB, userID uint) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	err := tx.Where("user_id = ? AND is_default = ?", userID, true).First(&pm).Error
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

// ClearDefaults drops the default flag on every method the user owns,
// run before promoting a new default.
func (r *PaymentRepository) ClearDefaults(tx *gorm.DB, userID uint) error {
	return tx.Model(&entity.PaymentMethod{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

func (r *PaymentRepository) Create(tx *gorm.DB, pm *entity.PaymentMethod) error {
	return tx.Create(pm).Error
}

func (r *PaymentRepository) Save(tx *gorm.DB, pm *entity.PaymentMethod) error {
	return tx.Save(pm).Error
}

func (r *PaymentRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.PaymentMethod{}, id).Error
}
