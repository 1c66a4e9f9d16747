package repository

import (
	"github.com/shinyuna/nuber-eats-back/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForCustomer(userID uint, status *entity.OrderStatus) ([]entity.Order, error) {
	q := r.DB.Where("customer_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []entity.Order
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForDriver(userID uint, status *entity.OrderStatus) ([]entity.Order, error) {
	q := r.DB.Where("driver_id = ?", userID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var out []entity.Order
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

// ListForOwner returns orders across every restaurant the user owns.
func (r *OrderRepository) ListForOwner(userID uint, status *entity.OrderStatus) ([]entity.Order, error) {
	q := r.DB.Table("orders AS o").
		Select("o.*").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Where("r.user_id = ? AND o.deleted_at IS NULL", userID)
	if status != nil {
		q = q.Where("o.status = ?", *status)
	}
	var out []entity.Order
	err := q.Order("o.id DESC").Find(&out).Error
	return out, err
}

// ---------------- Guarded writes ----------------

// UpdateStatusGuard moves the order from one status to the next with a
// conditional UPDATE. RowsAffected 0 means the order was not in `from`
// anymore, i.e. a lost race or an out-of-sequence request.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ClaimDriver sets the driver only when no driver is assigned yet.
// First claim wins; concurrent claims see RowsAffected 0.
func (r *OrderRepository) ClaimDriver(orderID, driverID uint) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND driver_id IS NULL", orderID).
		Update("driver_id", driverID)
	return res.RowsAffected, res.Error
}
