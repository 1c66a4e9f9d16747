package routes

import (
	"github.com/shinyuna/nuber-eats-back/configs"
	"github.com/shinyuna/nuber-eats-back/controllers"
	"github.com/shinyuna/nuber-eats-back/entity"
	"github.com/shinyuna/nuber-eats-back/middlewares"
	"github.com/shinyuna/nuber-eats-back/pubsub"
	"github.com/shinyuna/nuber-eats-back/repository"
	"github.com/shinyuna/nuber-eats-back/services"
	"github.com/shinyuna/nuber-eats-back/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, bus *pubsub.Bus) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	dishRepo := repository.NewDishRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	dishSvc := services.NewDishService(dishRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, dishRepo, bus)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	dishCtrl := controllers.NewDishController(dishSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	orderStream := ws.NewOrderStream(bus, orderRepo, restRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// Public browsing
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Orders (any authenticated role; the service applies the
	// ownership gate and the role table)
	o := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		o.POST("", requireRole(entity.RoleCustomer), orderCtrl.Create)
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
		o.PATCH("/:id/status", orderCtrl.UpdateStatus)
		o.POST("/:id/take", requireRole(entity.RoleDelivery), orderCtrl.Take)
	}

	// Partner Restaurant (owner)
	partner := r.Group("/partner/restaurant", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner))
	{
		partner.POST("", restCtrl.Create)
		partner.PATCH("/:id", restCtrl.Update)
		partner.POST("/dish", dishCtrl.Create)
		partner.PATCH("/dish/:id", dishCtrl.Update)
		partner.DELETE("/dish/:id", dishCtrl.Delete)
	}

	// Realtime subscriptions (token via ?token= for browser clients)
	wsGroup := r.Group("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret))
	{
		wsGroup.GET("/orders/pending", requireRole(entity.RoleOwner), orderStream.PendingOrders)
		wsGroup.GET("/orders/checked", requireRole(entity.RoleDelivery), orderStream.CheckedOrders)
		wsGroup.GET("/orders/:id/updates", orderStream.OrderUpdates)
	}
}

func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, ok := c.Get("role"); !ok || v != role {
			c.AbortWithStatusJSON(403, gin.H{"ok": false, "error": "forbidden"})
			return
		}
		c.Next()
	}
}
