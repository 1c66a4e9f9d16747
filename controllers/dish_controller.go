package controllers

import (
	"strconv"

	"github.com/shinyuna/nuber-eats-back/pkg/resp"
	"github.com/shinyuna/nuber-eats-back/services"
	"github.com/shinyuna/nuber-eats-back/utils"

	"github.com/gin-gonic/gin"
)

type DishController struct {
	Svc *services.DishService
}

func NewDishController(svc *services.DishService) *DishController {
	return &DishController{Svc: svc}
}

// POST /partner/restaurant/dish
func (dc *DishController) Create(c *gin.Context) {
	var req services.CreateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := dc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, dish)
}

// PATCH /partner/restaurant/dish/:id
func (dc *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.EditDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	dish, err := dc.Svc.Edit(utils.CurrentUserID(c), uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, dish)
}

// DELETE /partner/restaurant/dish/:id
func (dc *DishController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := dc.Svc.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id})
}
