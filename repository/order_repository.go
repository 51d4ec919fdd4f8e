package repository

import (
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// OrderScope narrows list queries by role: admin sees everything, a manager
// the orders of users in their country, a member only their own.
type OrderScope struct {
	UserID    *uint
	CountryID *uint
}

func (r *OrderRepository) withDetail(q *gorm.DB) *gorm.DB {
	return q.
		Preload("User.Country").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.MenuItem").
		Preload("Items.MenuItem.Restaurant").
		Preload("PaymentMethod")
}

func (r *OrderRepository) List(scope OrderScope) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{})
	if scope.CountryID != nil {
		q = q.Joins("JOIN users u ON u.id = orders.user_id").
			Where("u.country_id = ?", *scope.CountryID)
	}
	if scope.UserID != nil {
		q = q.Where("orders.user_id = ?", *scope.UserID)
	}
	var out []entity.Order
	err := r.withDetail(q).Order("orders.created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) GetDetail(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.withDetail(r.DB).First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetForUpdate loads an order with its owner (for scope checks) inside tx.
func (r *OrderRepository) GetForUpdate(tx *gorm.DB, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("User").Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetDraftForUser finds the user's cart, gorm.ErrRecordNotFound when absent.
func (r *OrderRepository) GetDraftForUser(tx *gorm.DB, userID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("user_id = ? AND status = ?", userID, entity.OrderDraft).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// DeleteWithItems removes an order and its lines ("clear cart").
// Lines are removed for real: a lingering soft-deleted row would keep
// holding the (order, menu item) unique index.
func (r *OrderRepository) DeleteWithItems(tx *gorm.DB, orderID uint) error {
	if err := tx.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

// ---------------- Items ----------------

func (r *OrderRepository) FindItem(tx *gorm.DB, orderID, menuItemID uint) (*entity.OrderItem, error) {
	var it entity.OrderItem
	err := tx.Where("order_id = ? AND menu_item_id = ?", orderID, menuItemID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderRepository) GetItem(tx *gorm.DB, orderID, itemID uint) (*entity.OrderItem, error) {
	var it entity.OrderItem
	err := tx.Where("id = ? AND order_id = ?", itemID, orderID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderRepository) SaveItem(tx *gorm.DB, it *entity.OrderItem) error {
	return tx.Save(it).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, it *entity.OrderItem) error {
	return tx.Create(it).Error
}

func (r *OrderRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.OrderItem{}, itemID).Error
}

// RecomputeTotal rewrites the order total from its live lines in a single
// statement, so it stays consistent with whatever the transaction just did.
func (r *OrderRepository) RecomputeTotal(tx *gorm.DB, orderID uint) error {
	return tx.Exec(`
		UPDATE orders
		   SET total = COALESCE((
		       SELECT SUM(price * quantity) FROM order_items
		        WHERE order_id = ? AND deleted_at IS NULL
		   ), 0)
		 WHERE id = ?
	`, orderID, orderID).Error
}

// UpdateStatusGuard flips status only when the order is still in `from`;
// zero rows affected means a lost race or an invalid transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string, updates map[string]any) (int64, error) {
	if updates == nil {
		updates = map[string]any{}
	}
	updates["status"] = to
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// ---------------- Menu lookups ----------------

func (r *OrderRepository) GetMenuItemWithRestaurant(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Restaurant").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
