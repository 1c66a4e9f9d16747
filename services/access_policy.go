package services

import (
	"github.com/shinyuna/nuber-eats-back/entity"
)

// Actor is the authenticated caller of an order operation.
type Actor struct {
	ID   uint
	Role string
}

// writableStatuses is the role table: which statuses each role may ever
// write. Customers are read-only after creation. The table says nothing
// about sequencing; that is enforced separately in OrderService.
var writableStatuses = map[string][]entity.OrderStatus{
	entity.RoleCustomer: nil,
	entity.RoleOwner:    {entity.StatusChecked, entity.StatusCooking},
	entity.RoleDelivery: {entity.StatusPickedUp, entity.StatusDelivered},
}

// CanAccessOrder is the ownership gate: the actor must be the order's
// customer, its assigned driver, or the owner of its restaurant.
// restaurantOwnerID is resolved by the caller from the order's
// restaurant. Any other actor is denied regardless of role.
func CanAccessOrder(actor Actor, order *entity.Order, restaurantOwnerID uint) bool {
	switch actor.Role {
	case entity.RoleCustomer:
		return order.CustomerID != nil && *order.CustomerID == actor.ID
	case entity.RoleOwner:
		return restaurantOwnerID == actor.ID
	case entity.RoleDelivery:
		return order.DriverID != nil && *order.DriverID == actor.ID
	default:
		return false
	}
}

// CanSetStatus reports whether the role table allows this role to write
// the given status at all.
func CanSetStatus(role string, status entity.OrderStatus) bool {
	for _, s := range writableStatuses[role] {
		if s == status {
			return true
		}
	}
	return false
}
