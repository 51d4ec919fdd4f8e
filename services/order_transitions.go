package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
	"github.com/GouravKumar19/slooze/pkg/rbac"
	"github.com/GouravKumar19/slooze/utils"
)

type CheckoutIn struct {
	PaymentMethodID *uint `json:"paymentMethodId"`
}

// Checkout confirms a draft order. The order must have at least one line
// and a resolvable payment method (explicit id, falling back to the owner's
// default). No settlement happens; payment is simulated.
func (s *OrderService) Checkout(claims *utils.Claims, orderID uint, in *CheckoutIn) (*OrderView, error) {
	if !rbac.HasPermission(claims.Role, rbac.Checkout) {
		return nil, forbidden("only admins and managers can checkout orders")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetForUpdate(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("order not found")
		}
		if err != nil {
			return err
		}

		// Owner may check out their own order; an admin anyone's;
		// a manager only orders from their own country.
		if o.UserID != claims.UserID && claims.Role != entity.RoleAdmin {
			if claims.Role != entity.RoleManager {
				return forbidden("access denied")
			}
			if o.User.CountryID != claims.CountryID {
				return forbidden("order is not in your region")
			}
		}

		if o.Status != entity.OrderDraft {
			return invalidState("order already submitted or cancelled")
		}
		if len(o.Items) == 0 {
			return invalidState("cannot checkout an empty order")
		}

		pm, err := s.resolvePaymentMethod(tx, o.UserID, in.PaymentMethodID)
		if err != nil {
			return err
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, entity.OrderDraft, entity.OrderConfirmed,
			map[string]any{"payment_method_id": pm.ID})
		if err != nil {
			return err
		}
		if affected == 0 {
			return invalidState("order already submitted or cancelled")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o, err := s.Repo.GetDetail(orderID)
	if err != nil {
		return nil, err
	}
	return buildOrderView(o), nil
}

// resolvePaymentMethod reads through the checkout transaction so the method
// it picks cannot change before the status flips.
func (s *OrderService) resolvePaymentMethod(tx *gorm.DB, ownerID uint, explicit *uint) (*entity.PaymentMethod, error) {
	if explicit != nil {
		pm, err := s.PayRepo.Get(tx, *explicit)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidState("no payment method available")
		}
		return pm, err
	}
	pm, err := s.PayRepo.GetDefaultForUser(tx, ownerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, invalidState("no payment method available")
	}
	return pm, err
}

// Cancel moves a submitted order to CANCELLED. Terminal orders
// (DELIVERED, CANCELLED) stay as they are.
func (s *OrderService) Cancel(claims *utils.Claims, orderID uint) error {
	if !rbac.HasPermission(claims.Role, rbac.CancelOrder) {
		return forbidden("only admins and managers can cancel orders")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetForUpdate(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("order not found")
		}
		if err != nil {
			return err
		}

		if claims.Role == entity.RoleManager && o.User.CountryID != claims.CountryID {
			return forbidden("order is not in your region")
		}

		if o.Status == entity.OrderDelivered || o.Status == entity.OrderCancelled {
			return invalidState("order is already delivered or cancelled")
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, entity.OrderCancelled, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return invalidState("order changed state, try again")
		}
		return nil
	})
}
