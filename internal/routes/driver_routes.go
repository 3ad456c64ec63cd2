package routes

import (
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/controllers"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	driver := r.Group("/driver")
	driver.Use(middleware.RequireAuthWithRoles("driver"))
	{
		driver.GET("/trips", controllers.GetMyAssignedTrips)
		driver.GET("/shifts", controllers.GetMyDriverShifts)
	}
}
