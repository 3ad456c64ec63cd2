package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// CreateMaintenanceRecord logs service work against a company vehicle
func CreateMaintenanceRecord(c *gin.Context) {
	var input struct {
		VehicleID   uint       `json:"vehicle_id" binding:"required"`
		Description string     `json:"description" binding:"required"`
		CostTotal   float64    `json:"cost_total"`
		ScheduledAt *time.Time `json:"scheduled_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}

	companyID := middleware.CompanyID(c)

	// The vehicle must belong to the caller's company
	var vehicle models.Vehicle
	if err := config.DB.Where("id = ? AND company_id = ?", input.VehicleID, companyID).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	record := models.MaintenanceRecord{
		CompanyID:   companyID,
		VehicleID:   input.VehicleID,
		Description: input.Description,
		Status:      models.MaintenanceScheduled,
		CostTotal:   input.CostTotal,
		ScheduledAt: input.ScheduledAt,
	}

	if err := config.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create maintenance record: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"maintenance": record})
}

func GetMyMaintenanceRecords(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	var records []models.MaintenanceRecord
	if err := config.DB.Where("company_id = ?", companyID).Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching maintenance records"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

func UpdateMaintenanceRecord(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var record models.MaintenanceRecord
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found"})
		return
	}

	var input struct {
		Description *string  `json:"description"`
		Status      *string  `json:"status"`
		CostTotal   *float64 `json:"cost_total"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update"})
		return
	}

	if input.Description != nil {
		record.Description = *input.Description
	}
	if input.Status != nil {
		record.Status = models.MaintenanceStatus(*input.Status)
		if record.Status == models.MaintenanceCompleted && record.CompletedAt == nil {
			now := time.Now()
			record.CompletedAt = &now
		}
	}
	if input.CostTotal != nil {
		record.CostTotal = *input.CostTotal
	}

	if err := config.DB.Save(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update maintenance record: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"maintenance": record})
}

func DeleteMaintenanceRecord(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var record models.MaintenanceRecord
	if err := config.DB.Where("id = ? AND company_id = ?", id, companyID).First(&record).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Maintenance record not found"})
		return
	}

	config.DB.Delete(&record)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record deleted"})
}
