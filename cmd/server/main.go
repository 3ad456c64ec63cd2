package main

import (
	"log"
	"net/http"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/logger"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Connect the analytics cache (optional)
	config.InitRedis()

	// Setup Gin router (recovery + request logging registered inside)
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚚 FleetFlow server running at :8080")
	log.Fatal(http.ListenAndServe("0.0.0.0:8080", handler))
}
