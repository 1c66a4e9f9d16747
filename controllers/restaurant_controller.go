package controllers

import (
	"strconv"

	"github.com/shinyuna/nuber-eats-back/pkg/resp"
	"github.com/shinyuna/nuber-eats-back/services"
	"github.com/shinyuna/nuber-eats-back/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /restaurants?categoryId=&page=&limit=
func (rc *RestaurantController) List(c *gin.Context) {
	var categoryID *uint
	if v := c.Query("categoryId"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			u := uint(id)
			categoryID = &u
		}
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))

	items, total, err := rc.Svc.List(categoryID, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"restaurant": rest, "menu": rest.Menu})
}

// POST /partner/restaurant
func (rc *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := rc.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

type UpdateRestaurantReq struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	CoverImg   *string `json:"coverImg"`
	CategoryID *uint   `json:"categoryId"`
}

// PATCH /partner/restaurant/:id
func (rc *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.CoverImg != nil {
		updates["cover_img"] = *req.CoverImg
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	rest, err := rc.Svc.Update(utils.CurrentUserID(c), uint(id), updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}
