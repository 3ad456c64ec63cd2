package routes

import (
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/controllers"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

// TripRoutes wires the dispatch path, the trip board and the order surface.
func TripRoutes(r *gin.Engine) {
	company := r.Group("/company")
	company.Use(middleware.RequireAuthWithRoles("owner", "dispatcher"))
	{
		company.POST("/trips/dispatch", controllers.DispatchTrip)
		company.GET("/trips", controllers.ListMyTrips)

		company.GET("/orders", controllers.ListMyOrders)
		company.GET("/orders/:id", controllers.GetOrder)
		company.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		company.PATCH("/orders/:id/payment", controllers.UpdatePaymentStatus)
		company.DELETE("/orders/:id", controllers.DeleteOrder)

		company.GET("/analytics/dashboard", controllers.GetDashboard)
	}
}
