package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
	"github.com/GouravKumar19/slooze/pkg/rbac"
	"github.com/GouravKumar19/slooze/repository"
	"github.com/GouravKumar19/slooze/utils"
)

type PaymentService struct {
	DB   *gorm.DB
	Repo *repository.PaymentRepository
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository) *PaymentService {
	return &PaymentService{DB: db, Repo: repo}
}

// List returns the caller's payment methods, default first. Reading is open
// to every role; only writes are admin-gated.
func (s *PaymentService) List(userID uint) ([]entity.PaymentMethod, error) {
	return s.Repo.ListForUser(userID)
}

type CreatePaymentMethodIn struct {
	Type      string `json:"type" binding:"required"`
	LastFour  string `json:"lastFour" binding:"required,len=4,numeric"`
	IsDefault bool   `json:"isDefault"`
}

func (s *PaymentService) Create(claims *utils.Claims, in *CreatePaymentMethodIn) (*entity.PaymentMethod, error) {
	if !rbac.HasPermission(claims.Role, rbac.UpdatePaymentMethod) {
		return nil, forbidden("only admins can manage payment methods")
	}

	pm := &entity.PaymentMethod{
		UserID:    claims.UserID,
		Type:      in.Type,
		LastFour:  in.LastFour,
		IsDefault: in.IsDefault,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if in.IsDefault {
			if err := s.Repo.ClearDefaults(tx, claims.UserID); err != nil {
				return err
			}
		}
		return s.Repo.Create(tx, pm)
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

type UpdatePaymentMethodIn struct {
	ID        uint    `json:"id" binding:"required"`
	Type      *string `json:"type"`
	LastFour  *string `json:"lastFour"`
	IsDefault *bool   `json:"isDefault"`
}

func (s *PaymentService) Update(claims *utils.Claims, in *UpdatePaymentMethodIn) (*entity.PaymentMethod, error) {
	if !rbac.HasPermission(claims.Role, rbac.UpdatePaymentMethod) {
		return nil, forbidden("only admins can manage payment methods")
	}

	pm, err := s.Repo.Get(s.DB, in.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("payment method not found")
	}
	if err != nil {
		return nil, err
	}
	// lookups stay scoped to the caller's own rows
	if pm.UserID != claims.UserID {
		return nil, notFound("payment method not found")
	}

	if in.LastFour != nil && len(*in.LastFour) != 4 {
		return nil, validation("lastFour must be exactly 4 digits")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if in.IsDefault != nil && *in.IsDefault {
			if err := s.Repo.ClearDefaults(tx, claims.UserID); err != nil {
				return err
			}
		}
		if in.Type != nil {
			pm.Type = *in.Type
		}
		if in.LastFour != nil {
			pm.LastFour = *in.LastFour
		}
		if in.IsDefault != nil {
			pm.IsDefault = *in.IsDefault
		}
		return s.Repo.Save(tx, pm)
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *PaymentService) Delete(claims *utils.Claims, id uint) error {
	if !rbac.HasPermission(claims.Role, rbac.UpdatePaymentMethod) {
		return forbidden("only admins can manage payment methods")
	}

	pm, err := s.Repo.Get(s.DB, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound("payment method not found")
	}
	if err != nil {
		return err
	}
	if pm.UserID != claims.UserID {
		return notFound("payment method not found")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, pm.ID)
	})
}
