package services

import (
	"errors"

	"github.com/shinyuna/nuber-eats-back/entity"
	"github.com/shinyuna/nuber-eats-back/pkg/apperr"
	"github.com/shinyuna/nuber-eats-back/pubsub"
	"github.com/shinyuna/nuber-eats-back/repository"

	"gorm.io/gorm"
)

// PendingOrderEvent goes out on NEW_PENDING_ORDER; OwnerID scopes it to
// the owner of the restaurant that has to confirm the order.
type PendingOrderEvent struct {
	Order   entity.Order `json:"order"`
	OwnerID uint         `json:"ownerId"`
}

// OrderEvent goes out on NEW_CHECKED_ORDER and NEW_ORDER_UPDATE.
type OrderEvent struct {
	Order entity.Order `json:"order"`
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	RestRepo *repository.RestaurantRepository
	DishRepo *repository.DishRepository
	Bus      *pubsub.Bus
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	restRepo *repository.RestaurantRepository,
	dishRepo *repository.DishRepository,
	bus *pubsub.Bus,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, RestRepo: restRepo, DishRepo: dishRepo, Bus: bus}
}

// ----- DTOs from Controller -----

type ItemOptionIn struct {
	Name            string   `json:"name" binding:"required"`
	SelectedChoices []string `json:"selectedChoices"`
}
type OrderItemIn struct {
	DishID          uint           `json:"dishId" binding:"required"`
	SelectedOptions []ItemOptionIn `json:"selectedOptions"`
}
type CreateOrderReq struct {
	RestaurantID uint          `json:"restaurantId" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1"`
}

type CreateOrderRes struct {
	OrderID uint  `json:"orderId"`
	Total   int64 `json:"total"`
}

// ----- Create -----

// CreateOrder validates every line, prices it, and persists order plus
// items in one transaction. Any bad line aborts the whole thing; no
// partial order is ever written.
func (s *OrderService) CreateOrder(customerID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	rest, err := s.RestRepo.FindByID(req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Restaurant not found.")
		}
		return nil, err
	}

	type line struct {
		dish       *entity.Dish
		selections []entity.ItemSelection
		price      int64
	}
	lines := make([]line, 0, len(req.Items))
	prices := make([]int64, 0, len(req.Items))

	for _, it := range req.Items {
		dish, err := s.DishRepo.FindByID(it.DishID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.E(apperr.NotFound, "Dish not found.")
			}
			return nil, err
		}
		if dish.RestaurantID != req.RestaurantID {
			return nil, apperr.E(apperr.Validation, "Dish does not belong to this restaurant.")
		}

		sels := make([]entity.ItemSelection, 0, len(it.SelectedOptions))
		for _, o := range it.SelectedOptions {
			sels = append(sels, entity.ItemSelection{Name: o.Name, Choices: o.SelectedChoices})
		}

		p := ComputeItemPrice(dish, sels)
		lines = append(lines, line{dish: dish, selections: sels, price: p})
		prices = append(prices, p)
	}

	total := ComputeOrderTotal(prices)

	order := entity.Order{
		CustomerID:   &customerID,
		RestaurantID: req.RestaurantID,
		Total:        total,
		Status:       entity.StatusPending,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				DishID:     l.dish.ID,
				DishName:   l.dish.Name,
				Selections: l.selections,
				LinePrice:  l.price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Bus.Publish(pubsub.NewPendingOrder, PendingOrderEvent{Order: order, OwnerID: rest.UserID})

	return &CreateOrderRes{OrderID: order.ID, Total: order.Total}, nil
}

// ----- Read -----

// loadGated loads the order and applies the ownership gate for actor.
func (s *OrderService) loadGated(actor Actor, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Order not found.")
		}
		return nil, err
	}

	ownerID, err := s.RestRepo.OwnerID(order.RestaurantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !CanAccessOrder(actor, order, ownerID) {
		return nil, apperr.E(apperr.Forbidden, "You can't do that.")
	}
	return order, nil
}

func (s *OrderService) GetOrder(actor Actor, orderID uint) (*entity.Order, error) {
	return s.loadGated(actor, orderID)
}

// ListOrders returns the orders visible to the actor: customers their
// own, deliveries the ones they drive, owners every order across the
// restaurants they own. The status filter is an exact match.
func (s *OrderService) ListOrders(actor Actor, status *entity.OrderStatus) ([]entity.Order, error) {
	if status != nil && !status.Valid() {
		return nil, apperr.E(apperr.Validation, "Unknown order status.")
	}
	switch actor.Role {
	case entity.RoleCustomer:
		return s.Repo.ListForCustomer(actor.ID, status)
	case entity.RoleDelivery:
		return s.Repo.ListForDriver(actor.ID, status)
	case entity.RoleOwner:
		return s.Repo.ListForOwner(actor.ID, status)
	default:
		return nil, apperr.E(apperr.Forbidden, "You can't do that.")
	}
}

// ----- Transitions -----

// UpdateOrderStatus applies the ownership gate, the role table, and
// strict forward sequencing: the new status must be the immediate
// successor of the stored one, checked with a conditional UPDATE so two
// racing writers cannot both advance the order.
func (s *OrderService) UpdateOrderStatus(actor Actor, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperr.E(apperr.Validation, "Unknown order status.")
	}

	order, err := s.loadGated(actor, orderID)
	if err != nil {
		return nil, err
	}
	if !CanSetStatus(actor.Role, status) {
		return nil, apperr.E(apperr.Forbidden, "You can't do that.")
	}

	prev, ok := status.Prev()
	if !ok {
		// only Pending has no predecessor, and nobody may write Pending
		return nil, apperr.E(apperr.Forbidden, "You can't do that.")
	}
	affected, err := s.Repo.UpdateStatusGuard(order.ID, prev, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.E(apperr.Conflict, "Order is not ready for that status.")
	}

	order.Status = status
	if status == entity.StatusChecked {
		// broadcast to the delivery pool so any free driver can claim it
		s.Bus.Publish(pubsub.NewCheckedOrder, OrderEvent{Order: *order})
	}
	s.Bus.Publish(pubsub.NewOrderUpdate, OrderEvent{Order: *order})

	return order, nil
}

// AssignDriver lets a delivery claim an unclaimed order. First claim
// wins; everyone else gets a Conflict, including retries after one.
func (s *OrderService) AssignDriver(driverID, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.E(apperr.NotFound, "Order not found.")
		}
		return nil, err
	}
	if order.DriverID != nil {
		return nil, apperr.E(apperr.Conflict, "This order already has a driver.")
	}

	affected, err := s.Repo.ClaimDriver(orderID, driverID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, apperr.E(apperr.Conflict, "This order already has a driver.")
	}

	order.DriverID = &driverID
	s.Bus.Publish(pubsub.NewOrderUpdate, OrderEvent{Order: *order})

	return order, nil
}
