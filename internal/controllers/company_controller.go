package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// GetMyCompany returns the authenticated user's company profile
func GetMyCompany(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	var company models.Company
	if err := config.DB.Preload("Vehicles").Preload("Drivers").First(&company, companyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}

// ListCompanies lists all companies (administrative use)
func ListCompanies(c *gin.Context) {
	var companies []models.Company
	if err := config.DB.Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch companies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": companies})
}

// UpdateMyCompany modifies the authenticated user's company profile
func UpdateMyCompany(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	var company models.Company
	if err := config.DB.First(&company, companyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	var input struct {
		Name    *string `json:"name"`
		Owner   *string `json:"owner"`
		Email   *string `json:"email"`
		Phone   *string `json:"phone"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		company.Name = *input.Name
	}
	if input.Owner != nil {
		company.Owner = *input.Owner
	}
	if input.Email != nil {
		company.Email = *input.Email
	}
	if input.Phone != nil {
		company.Phone = *input.Phone
	}
	if input.Address != nil {
		company.Address = *input.Address
	}

	if err := config.DB.Save(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update company: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"company": company})
}
