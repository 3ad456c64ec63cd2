package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// CreateVehicle registers a new vehicle under the caller's company
func CreateVehicle(c *gin.Context) {
	var input struct {
		RegistrationNumber string  `json:"registration_number" binding:"required"`
		Type               string  `json:"type" binding:"required"`
		CapacityWeight     float64 `json:"capacity_weight" binding:"required"`
		FuelEfficiency     float64 `json:"fuel_efficiency"`
	}

	// Parse JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle input: " + err.Error()})
		return
	}

	companyID := middleware.CompanyID(c)

	vehicle := models.Vehicle{
		RegistrationNumber: input.RegistrationNumber,
		Type:               input.Type,
		CapacityWeight:     input.CapacityWeight,
		FuelEfficiency:     input.FuelEfficiency,
		CompanyID:          companyID,
		Status:             "active",
	}

	// Save to DB
	if err := config.DB.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

func GetMyVehicles(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	var vehicles []models.Vehicle
	if err := config.DB.Where("company_id = ?", companyID).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching vehicles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// This method is typically for administrative use.
func ListVehicles(c *gin.Context) {
	var vehicles []models.Vehicle
	// Fetch all vehicles without filtering by company_id
	if err := config.DB.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": vehicles})
}

func UpdateVehicle(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	var input struct {
		RegistrationNumber *string  `json:"registration_number"`
		Type               *string  `json:"type"`
		CapacityWeight     *float64 `json:"capacity_weight"`
		FuelEfficiency     *float64 `json:"fuel_efficiency"`
		Status             *string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if input.RegistrationNumber != nil {
		vehicle.RegistrationNumber = *input.RegistrationNumber
	}
	if input.Type != nil {
		vehicle.Type = *input.Type
	}
	if input.CapacityWeight != nil {
		vehicle.CapacityWeight = *input.CapacityWeight
	}
	if input.FuelEfficiency != nil {
		vehicle.FuelEfficiency = *input.FuelEfficiency
	}
	if input.Status != nil {
		vehicle.Status = *input.Status
	}

	config.DB.Save(&vehicle)
	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

func DeleteVehicle(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	config.DB.Delete(&vehicle)
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted"})
}
