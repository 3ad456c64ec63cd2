package routes

import (
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/controllers"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(r *gin.Engine) {
	admin := r.Group("admin")
	admin.Use(middleware.RequireAuthWithRoles("admin"))
	{
		admin.GET("/companies", controllers.ListCompanies)
		admin.GET("/vehicles", controllers.ListVehicles)
		admin.GET("/drivers", controllers.ListDrivers)
	}
}
