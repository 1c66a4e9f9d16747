package controllers

import (
	"strconv"

	"github.com/shinyuna/nuber-eats-back/entity"
	"github.com/shinyuna/nuber-eats-back/pkg/resp"
	"github.com/shinyuna/nuber-eats-back/services"
	"github.com/shinyuna/nuber-eats-back/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{ID: utils.CurrentUserID(c), Role: utils.CurrentRole(c)}
}

// POST /orders (customer)
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Svc.CreateOrder(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders?status=
func (oc *OrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if v := c.Query("status"); v != "" {
		s := entity.OrderStatus(v)
		status = &s
	}

	orders, err := oc.Svc.ListOrders(actorFrom(c), status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Svc.GetOrder(actorFrom(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id/status (owner or delivery, per the role table)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.UpdateOrderStatus(actorFrom(c), uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": order.ID, "status": order.Status})
}

// POST /orders/:id/take (delivery claims the order)
func (oc *OrderController) Take(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := oc.Svc.AssignDriver(utils.CurrentUserID(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": order.ID})
}
