package routes

import (
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/controllers"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func CompanyRoutes(r *gin.Engine) {
	company := r.Group("/company")
	company.Use(middleware.RequireAuthWithRoles("owner", "dispatcher"))
	{
		company.GET("/", controllers.GetMyCompany)
		company.PUT("/", controllers.UpdateMyCompany)

		company.POST("/drivers", controllers.CreateDriver)
		company.GET("/drivers", controllers.GetMyDrivers)
		company.PUT("/drivers/:id", controllers.UpdateDriver)
		company.DELETE("/drivers/:id", controllers.DeleteDriver)

		company.POST("/maintenance", controllers.CreateMaintenanceRecord)
		company.GET("/maintenance", controllers.GetMyMaintenanceRecords)
		company.PUT("/maintenance/:id", controllers.UpdateMaintenanceRecord)
		company.DELETE("/maintenance/:id", controllers.DeleteMaintenanceRecord)

		company.POST("/shifts", controllers.CreateShift)
		company.GET("/shifts", controllers.GetMyShifts)
		company.PUT("/shifts/:id", controllers.UpdateShift)
		company.DELETE("/shifts/:id", controllers.DeleteShift)

		company.POST("/routes", controllers.CreateRoute)
		company.GET("/routes", controllers.ListRoutes)
		company.GET("/routes/:id", controllers.GetRoute)
		company.PUT("/routes/:id", controllers.UpdateRoute)
		company.DELETE("/routes/:id", controllers.DeleteRoute)
	}
}
