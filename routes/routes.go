package routes

import (
	"washwear-backend/config"
	"washwear-backend/controllers"
	"washwear-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.GetClients)
			clients.GET("/:id", controllers.GetClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", controllers.CreateOrder)
			orders.GET("", controllers.GetOrders)
			orders.PUT("/:id/status", controllers.UpdateOrderStatus)
			orders.DELETE("/:id", controllers.DeleteOrder)
		}

		// Payment routes
		payments := api.Group("/payments")
		{
			payments.POST("", controllers.CreatePayment)
			payments.GET("", controllers.GetPayments)
			payments.DELETE("/:id", controllers.DeletePayment)
		}

		// Cost routes
		costs := api.Group("/costs")
		{
			costs.POST("", controllers.CreateCost)
			costs.GET("", controllers.GetCosts)
		}

		// Dashboard and report routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
		api.GET("/reports", controllers.GetPerformanceReport)

		// Calendar routes
		api.GET("/calendar", controllers.GetCalendarMonth)
		api.GET("/calendar/day", controllers.GetCalendarDay)
	}

	return r
}
