package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// CreateShift schedules a driver for a working window
func CreateShift(c *gin.Context) {
	var input struct {
		DriverID  uint      `json:"driver_id" binding:"required"`
		VehicleID uint      `json:"vehicle_id"`
		StartTime time.Time `json:"start_time" binding:"required"`
		EndTime   time.Time `json:"end_time" binding:"required"`
		Notes     string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shift input: " + err.Error()})
		return
	}
	if !input.EndTime.After(input.StartTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be after start_time"})
		return
	}

	companyID := middleware.CompanyID(c)

	var driver models.Driver
	if err := config.DB.Where("id = ? AND company_id = ?", input.DriverID, companyID).First(&driver).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
		return
	}

	shift := models.Shift{
		CompanyID: companyID,
		DriverID:  input.DriverID,
		VehicleID: input.VehicleID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    "scheduled",
		Notes:     input.Notes,
	}

	if err := config.DB.Create(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shift: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"shift": shift})
}

func GetMyShifts(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	var shifts []models.Shift
	if err := config.DB.Where("company_id = ?", companyID).Order("start_time").Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching shifts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": shifts})
}

// GetMyDriverShifts lets an authenticated driver see their own schedule.
func GetMyDriverShifts(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	userID := middleware.UserID(c)

	var driver models.Driver
	if err := config.DB.Where("user_id = ? AND company_id = ?", userID, companyID).First(&driver).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No driver profile linked to this account"})
		return
	}

	var shifts []models.Shift
	if err := config.DB.Where("company_id = ? AND driver_id = ?", companyID, driver.ID).
		Order("start_time").Find(&shifts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching shifts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": shifts})
}

func UpdateShift(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var shift models.Shift
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&shift).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}

	var input struct {
		VehicleID *uint      `json:"vehicle_id"`
		StartTime *time.Time `json:"start_time"`
		EndTime   *time.Time `json:"end_time"`
		Status    *string    `json:"status"`
		Notes     *string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if input.VehicleID != nil {
		shift.VehicleID = *input.VehicleID
	}
	if input.StartTime != nil {
		shift.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		shift.EndTime = *input.EndTime
	}
	if input.Status != nil {
		shift.Status = *input.Status
	}
	if input.Notes != nil {
		shift.Notes = *input.Notes
	}

	if err := config.DB.Save(&shift).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shift: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shift": shift})
}

func DeleteShift(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var shift models.Shift
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&shift).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift not found"})
		return
	}

	config.DB.Delete(&shift)
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted"})
}
