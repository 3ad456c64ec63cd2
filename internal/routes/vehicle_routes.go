package routes

import (
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/controllers"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func VehicleRoutes(r *gin.Engine) {
	vehicles := r.Group("/company/vehicles")
	vehicles.Use(middleware.RequireAuthWithRoles("owner", "dispatcher"))
	{
		vehicles.POST("/", controllers.CreateVehicle)
		vehicles.GET("/", controllers.GetMyVehicles)
		vehicles.PUT("/:id", controllers.UpdateVehicle)
		vehicles.DELETE("/:id", controllers.DeleteVehicle)
	}
}
