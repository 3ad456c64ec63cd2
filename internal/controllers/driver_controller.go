package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// updateDriverInput defines the fields a client can send to update a driver's profile.
type updateDriverInput struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	LicenseNumber *string `json:"license_number"`
	Status        *string `json:"status"`

	// Performance telemetry, supplied by periodic imports.
	OnTimeDeliveryRate *float64 `json:"on_time_delivery_rate"`
	SafetyScore        *float64 `json:"safety_score"`
	ComplianceScore    *float64 `json:"compliance_score"`
	TotalTrips         *int     `json:"total_trips"`
	TotalDistanceKm    *float64 `json:"total_distance_km"`
}

// CreateDriver onboards a driver under the caller's company. Drivers created
// here have no login; a user account can be linked later via signup.
func CreateDriver(c *gin.Context) {
	var input struct {
		Name          string `json:"name" binding:"required"`
		Phone         string `json:"phone"`
		LicenseNumber string `json:"license_number" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	companyID := middleware.CompanyID(c)

	driver := models.Driver{
		Name:          input.Name,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		CompanyID:     companyID,
		Status:        "active",
	}

	if err := config.DB.Create(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func GetMyDrivers(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	var drivers []models.Driver
	if err := config.DB.Where("company_id = ?", companyID).Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching drivers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

// ListDrivers is for administrative use: every driver across companies.
func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func UpdateDriver(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var driver models.Driver
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching driver: " + err.Error()})
		}
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body format: " + err.Error()})
		return
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.LicenseNumber != nil {
		driver.LicenseNumber = *input.LicenseNumber
	}
	if input.Status != nil {
		driver.Status = *input.Status
	}
	if input.OnTimeDeliveryRate != nil {
		driver.OnTimeDeliveryRate = *input.OnTimeDeliveryRate
	}
	if input.SafetyScore != nil {
		driver.SafetyScore = *input.SafetyScore
	}
	if input.ComplianceScore != nil {
		driver.ComplianceScore = *input.ComplianceScore
	}
	if input.TotalTrips != nil {
		driver.TotalTrips = *input.TotalTrips
	}
	if input.TotalDistanceKm != nil {
		driver.TotalDistanceKm = *input.TotalDistanceKm
	}

	if err := config.DB.Save(&driver).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

func DeleteDriver(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var driver models.Driver
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&driver).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	config.DB.Delete(&driver)
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
