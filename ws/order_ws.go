package ws

import (
	"log"
	"net/http"
	"strconv"

	"github.com/shinyuna/nuber-eats-back/pubsub"
	"github.com/shinyuna/nuber-eats-back/repository"
	"github.com/shinyuna/nuber-eats-back/services"
	"github.com/shinyuna/nuber-eats-back/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// OrderStream pushes order lifecycle events to connected clients. Each
// connection holds one bus subscription; closing the socket drops it.
type OrderStream struct {
	Bus       *pubsub.Bus
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
}

func NewOrderStream(bus *pubsub.Bus, orderRepo *repository.OrderRepository, restRepo *repository.RestaurantRepository) *OrderStream {
	return &OrderStream{Bus: bus, OrderRepo: orderRepo, RestRepo: restRepo}
}

// WS route: /ws/orders/pending (owner only, gated in routes)
// Delivers NEW_PENDING_ORDER events for restaurants this owner runs.
func (h *OrderStream) PendingOrders(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := h.Bus.Subscribe(pubsub.NewPendingOrder, func(p any) bool {
		ev, ok := p.(services.PendingOrderEvent)
		return ok && ev.OwnerID == userID
	})
	h.pump(conn, sub)
}

// WS route: /ws/orders/checked (delivery only, gated in routes)
// Broadcast to the whole delivery pool so any free driver can claim.
func (h *OrderStream) CheckedOrders(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := h.Bus.Subscribe(pubsub.NewCheckedOrder, nil)
	h.pump(conn, sub)
}

// WS route: /ws/orders/:id/updates
// Delivers NEW_ORDER_UPDATE for one order, and only to its customer,
// its driver, or the restaurant owner. The driver check runs against
// the event payload, so a driver assigned after subscribing still gets
// updates.
func (h *OrderStream) OrderUpdates(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid order id"})
		return
	}
	orderID := uint(id)

	order, err := h.OrderRepo.GetOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "Order not found."})
		return
	}
	ownerID, err := h.RestRepo.OwnerID(order.RestaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := h.Bus.Subscribe(pubsub.NewOrderUpdate, func(p any) bool {
		ev, ok := p.(services.OrderEvent)
		if !ok || ev.Order.ID != orderID {
			return false
		}
		o := ev.Order
		if o.CustomerID != nil && *o.CustomerID == userID {
			return true
		}
		if o.DriverID != nil && *o.DriverID == userID {
			return true
		}
		return ownerID == userID
	})
	h.pump(conn, sub)
}

// pump writes bus payloads to the socket until either side goes away.
// The read loop exists only to notice the client disconnecting.
func (h *OrderStream) pump(conn *websocket.Conn, sub *pubsub.Subscription) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer conn.Close()
	defer h.Bus.Unsubscribe(sub)

	for {
		select {
		case payload, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(payload); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
