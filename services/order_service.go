package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
	"github.com/GouravKumar19/slooze/pkg/rbac"
	"github.com/GouravKumar19/slooze/repository"
	"github.com/GouravKumar19/slooze/utils"
)

type OrderService struct {
	DB      *gorm.DB
	Repo    *repository.OrderRepository
	PayRepo *repository.PaymentRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, payRepo *repository.PaymentRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, PayRepo: payRepo}
}

// ----- views returned to controllers -----

type OrderLine struct {
	ID       uint            `json:"id"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
	Subtotal float64         `json:"subtotal"`
	MenuItem entity.MenuItem `json:"menuItem"`
}

type OrderUser struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Country entity.Country `json:"country"`
}

type PaymentMethodView struct {
	ID       uint   `json:"id"`
	Type     string `json:"type"`
	LastFour string `json:"lastFour"`
}

type OrderView struct {
	ID            uint               `json:"id"`
	Status        string             `json:"status"`
	Total         float64            `json:"total"`
	CreatedAt     time.Time          `json:"createdAt"`
	User          *OrderUser         `json:"user,omitempty"`
	Items         []OrderLine        `json:"items"`
	PaymentMethod *PaymentMethodView `json:"paymentMethod,omitempty"`
}

// CartView is the draft order as the cart endpoint renders it; the zero
// value (ID 0, no items) stands for "no cart yet".
type CartView struct {
	ID        uint        `json:"id"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"itemCount"`
}

func orderLines(items []entity.OrderItem) []OrderLine {
	lines := make([]OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderLine{
			ID:       it.ID,
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: it.Price * float64(it.Quantity),
			MenuItem: it.MenuItem,
		})
	}
	return lines
}

func buildOrderView(o *entity.Order) *OrderView {
	v := &OrderView{
		ID:        o.ID,
		Status:    o.Status,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     orderLines(o.Items),
	}
	if o.User.ID != 0 {
		v.User = &OrderUser{ID: o.User.ID, Name: o.User.Name, Country: o.User.Country}
	}
	if o.PaymentMethod != nil {
		v.PaymentMethod = &PaymentMethodView{
			ID:       o.PaymentMethod.ID,
			Type:     o.PaymentMethod.Type,
			LastFour: o.PaymentMethod.LastFour,
		}
	}
	return v
}

// ----- cart -----

// Cart returns the user's draft order, or an empty view when none exists.
func (s *OrderService) Cart(userID uint) (*CartView, error) {
	draft, err := s.Repo.GetDraftForUser(s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &CartView{Items: []OrderLine{}}, nil
	}
	if err != nil {
		return nil, err
	}

	o, err := s.Repo.GetDetail(draft.ID)
	if err != nil {
		return nil, err
	}

	view := &CartView{ID: o.ID, Items: orderLines(o.Items), Total: o.Total}
	for _, it := range o.Items {
		view.ItemCount += it.Quantity
	}
	return view, nil
}

// ClearCart deletes the draft order and its lines. Clearing an absent cart
// is a no-op, not an error.
func (s *OrderService) ClearCart(userID uint) error {
	draft, err := s.Repo.GetDraftForUser(s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteWithItems(tx, draft.ID)
	})
}

// ----- add to cart -----

type AddItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// AddItem puts a menu item into the caller's draft order, creating the
// draft when needed. Adding an item that is already in the cart sums the
// quantities instead of inserting a second line. The line mutation and the
// total recompute run in one transaction.
func (s *OrderService) AddItem(claims *utils.Claims, in *AddItemIn) (*OrderView, error) {
	if !rbac.HasPermission(claims.Role, rbac.CreateOrder) {
		return nil, forbidden("you cannot create orders")
	}

	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	menuItem, err := s.Repo.GetMenuItemWithRestaurant(in.MenuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("menu item not found")
	}
	if err != nil {
		return nil, err
	}

	if menuItem.Restaurant == nil ||
		!rbac.CanAccessCountry(claims.Role, claims.CountryID, menuItem.Restaurant.CountryID) {
		return nil, forbidden("this item is not available in your region")
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		draft, err := s.Repo.GetDraftForUser(tx, claims.UserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			draft = &entity.Order{UserID: claims.UserID, Status: entity.OrderDraft}
			if err := s.Repo.Create(tx, draft); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		orderID = draft.ID

		line, err := s.Repo.FindItem(tx, draft.ID, menuItem.ID)
		switch {
		case err == nil:
			line.Quantity += qty
			if err := s.Repo.SaveItem(tx, line); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = &entity.OrderItem{
				OrderID:    draft.ID,
				MenuItemID: menuItem.ID,
				Quantity:   qty,
				Price:      menuItem.Price,
			}
			if err := s.Repo.CreateItem(tx, line); err != nil {
				return err
			}
		default:
			return err
		}

		return s.Repo.RecomputeTotal(tx, draft.ID)
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

// ----- quantity update -----

type UpdateItemIn struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// UpdateItemQuantity changes a line on the caller's own draft order.
// Quantity zero or below deletes the line; the total is recomputed either way.
func (s *OrderService) UpdateItemQuantity(claims *utils.Claims, orderID uint, in *UpdateItemIn) (*OrderView, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetForUpdate(tx, orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("order not found")
		}
		if err != nil {
			return err
		}

		if o.UserID != claims.UserID {
			return forbidden("only the order owner can modify it")
		}
		if o.Status != entity.OrderDraft {
			return invalidState("cannot modify order - not in draft status")
		}

		item, err := s.Repo.GetItem(tx, o.ID, in.ItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("order item not found")
		}
		if err != nil {
			return err
		}

		if in.Quantity <= 0 {
			if err := s.Repo.DeleteItem(tx, item.ID); err != nil {
				return err
			}
		} else {
			item.Quantity = in.Quantity
			if err := s.Repo.SaveItem(tx, item); err != nil {
				return err
			}
		}

		return s.Repo.RecomputeTotal(tx, o.ID)
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

// ----- list & detail -----

// List applies the role's implicit scope: admin sees every order, a manager
// the orders of users in their country, a member only their own.
func (s *OrderService) List(claims *utils.Claims) ([]*OrderView, error) {
	scope := repository.OrderScope{}
	switch claims.Role {
	case entity.RoleAdmin:
	case entity.RoleManager:
		scope.CountryID = &claims.CountryID
	default:
		scope.UserID = &claims.UserID
	}

	orders, err := s.Repo.List(scope)
	if err != nil {
		return nil, err
	}

	views := make([]*OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, buildOrderView(&orders[i]))
	}
	return views, nil
}

func (s *OrderService) Detail(claims *utils.Claims, orderID uint) (*OrderView, error) {
	o, err := s.Repo.GetDetail(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound("order not found")
	}
	if err != nil {
		return nil, err
	}

	if !rbac.CanAccessOrder(claims.Role, claims.UserID, o.UserID, claims.CountryID, o.User.CountryID) {
		return nil, forbidden("access denied")
	}
	return buildOrderView(o), nil
}
