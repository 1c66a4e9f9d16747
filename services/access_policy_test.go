package services

import (
	"testing"

	"github.com/shinyuna/nuber-eats-back/entity"
)

func uptr(v uint) *uint { return &v }

func TestCanAccessOrderOwnershipGate(t *testing.T) {
	order := &entity.Order{
		CustomerID:   uptr(10),
		DriverID:     uptr(20),
		RestaurantID: 1,
	}
	const ownerID = 30

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"customer on own order", Actor{ID: 10, Role: entity.RoleCustomer}, true},
		{"other customer", Actor{ID: 11, Role: entity.RoleCustomer}, false},
		{"assigned driver", Actor{ID: 20, Role: entity.RoleDelivery}, true},
		{"other driver", Actor{ID: 21, Role: entity.RoleDelivery}, false},
		{"restaurant owner", Actor{ID: 30, Role: entity.RoleOwner}, true},
		{"other owner", Actor{ID: 31, Role: entity.RoleOwner}, false},
		{"unknown role", Actor{ID: 10, Role: "admin"}, false},
	}
	for _, tc := range cases {
		if got := CanAccessOrder(tc.actor, order, ownerID); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCanAccessOrderUnassignedDriver(t *testing.T) {
	order := &entity.Order{CustomerID: uptr(10), RestaurantID: 1}
	if CanAccessOrder(Actor{ID: 20, Role: entity.RoleDelivery}, order, 30) {
		t.Fatal("a delivery without the assignment must be denied")
	}
}

func TestCanSetStatusRoleTable(t *testing.T) {
	all := []entity.OrderStatus{
		entity.StatusPending, entity.StatusChecked, entity.StatusCooking,
		entity.StatusPickedUp, entity.StatusDelivered,
	}
	allowed := map[string]map[entity.OrderStatus]bool{
		entity.RoleCustomer: {},
		entity.RoleOwner: {
			entity.StatusChecked: true,
			entity.StatusCooking: true,
		},
		entity.RoleDelivery: {
			entity.StatusPickedUp:  true,
			entity.StatusDelivered: true,
		},
	}

	for role, table := range allowed {
		for _, st := range all {
			if got := CanSetStatus(role, st); got != table[st] {
				t.Errorf("role %s status %s: got %v, want %v", role, st, got, table[st])
			}
		}
	}

	if CanSetStatus("admin", entity.StatusChecked) {
		t.Fatal("unknown roles may not set any status")
	}
}

func TestStatusSequence(t *testing.T) {
	seq := []entity.OrderStatus{
		entity.StatusPending, entity.StatusChecked, entity.StatusCooking,
		entity.StatusPickedUp, entity.StatusDelivered,
	}
	for i, st := range seq {
		if st.Rank() != i {
			t.Errorf("%s: rank %d, want %d", st, st.Rank(), i)
		}
	}
	if entity.OrderStatus("Cancelled").Valid() {
		t.Fatal("unknown status must not be valid")
	}
	if _, ok := entity.StatusPending.Prev(); ok {
		t.Fatal("Pending has no predecessor")
	}
	if prev, ok := entity.StatusChecked.Prev(); !ok || prev != entity.StatusPending {
		t.Fatalf("Checked should follow Pending, got %s", prev)
	}
}
