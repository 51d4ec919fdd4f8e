package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GouravKumar19/slooze/configs"
	"github.com/GouravKumar19/slooze/controllers"
	"github.com/GouravKumar19/slooze/middlewares"
	"github.com/GouravKumar19/slooze/repository"
	"github.com/GouravKumar19/slooze/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	payRepo := repository.NewPaymentRepository(db)

	// Services
	restSvc := services.NewRestaurantService(db, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, payRepo)
	paySvc := services.NewPaymentService(db, payRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	payCtrl := controllers.NewPaymentMethodController(paySvc)

	// Auth (public, demo login)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/users", authCtrl.Users)
	}

	// Everything else requires a valid session token
	authed := r.Group("/", middlewares.AuthMiddleware(cfg))
	{
		authed.GET("/restaurants", restCtrl.List)
		authed.GET("/restaurants/:id", restCtrl.Detail)

		authed.GET("/cart", cartCtrl.Get)
		authed.DELETE("/cart", cartCtrl.Clear)

		authed.POST("/orders", orderCtrl.Create)
		authed.GET("/orders", orderCtrl.List)
		authed.GET("/orders/:id", orderCtrl.Detail)
		authed.PUT("/orders/:id", orderCtrl.UpdateQuantity)
		authed.DELETE("/orders/:id", orderCtrl.Cancel)
		authed.POST("/orders/:id/checkout", orderCtrl.Checkout)

		authed.GET("/payment-methods", payCtrl.List)
		authed.POST("/payment-methods", payCtrl.Create)
		authed.PUT("/payment-methods", payCtrl.Update)
		authed.DELETE("/payment-methods", payCtrl.Delete)
	}
}
