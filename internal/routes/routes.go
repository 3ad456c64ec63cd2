package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Recovery + request logging run before any route handler
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	CompanyRoutes(r)
	VehicleRoutes(r)
	TripRoutes(r)
	DriverRoutes(r)
	AdminRoutes(r)

	return r
}
