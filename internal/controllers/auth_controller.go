package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`

	// Owner signup registers the company alongside the user.
	CompanyName    string `json:"company_name"`
	CompanyOwner   string `json:"company_owner"`
	CompanyAddress string `json:"company_address"`

	// Dispatcher/driver signup joins an existing company.
	CompanyID     uint   `json:"company_id"`
	DriverPhone   string `json:"driver_phone"`
	LicenseNumber string `json:"license_number"`
}

func SignupUser(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, err := validateAndNormalizeRole(input.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Role = role

	hashedPassword, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	user, err := createUserRecord(tx, input, hashedPassword)
	if err != nil {
		tx.Rollback()
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	err = createActorRecord(tx, &user, input)
	if err != nil {
		tx.Rollback()
		if strings.Contains(err.Error(), "required for") ||
			strings.Contains(err.Error(), "must be assigned") ||
			strings.Contains(err.Error(), "does not exist") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create actor record: " + err.Error()})
		}
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.CompanyID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  prepareUserResponse(user),
	})
}

func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	query := config.DB.Where("email = ?", body.Email).
		Preload("Company").
		Preload("Driver")

	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.CompanyID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  prepareUserResponse(user),
	})
}

func validateAndNormalizeRole(roleInput string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(roleInput))
	if role == "" {
		role = "dispatcher"
	}
	switch role {
	case "owner", "dispatcher", "driver", "admin":
		return role, nil
	default:
		return "", errors.New("invalid role")
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func createUserRecord(tx *gorm.DB, input signupInput, hashedPassword string) (models.User, error) {
	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  hashedPassword,
		Phone:     input.Phone,
		Role:      input.Role,
		CompanyID: input.CompanyID,
	}
	if err := tx.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func createActorRecord(tx *gorm.DB, user *models.User, input signupInput) error {
	switch user.Role {
	case "owner":
		if input.CompanyName == "" || input.CompanyOwner == "" {
			return errors.New("company_name and company_owner are required for owner role")
		}

		company := models.Company{
			Name:    input.CompanyName,
			Owner:   input.CompanyOwner,
			Email:   input.Email,
			Phone:   input.Phone,
			Address: input.CompanyAddress,
		}
		if err := tx.Create(&company).Error; err != nil {
			return err
		}
		user.CompanyID = company.ID
		user.Company = &company
		if err := tx.Save(user).Error; err != nil {
			return err
		}
	case "dispatcher":
		if input.CompanyID == 0 {
			return errors.New("dispatcher must be assigned to a company_id")
		}
		if err := ensureCompanyExists(tx, input.CompanyID); err != nil {
			return err
		}
	case "driver":
		if input.LicenseNumber == "" {
			return errors.New("license_number is required for driver role")
		}
		if input.CompanyID == 0 {
			return errors.New("driver must be assigned to a company_id")
		}
		if err := ensureCompanyExists(tx, input.CompanyID); err != nil {
			return err
		}

		driver := models.Driver{
			UserID:        user.ID,
			Name:          input.Name,
			Phone:         input.DriverPhone,
			LicenseNumber: input.LicenseNumber,
			CompanyID:     input.CompanyID,
			Status:        "active",
		}
		if err := tx.Create(&driver).Error; err != nil {
			return err
		}
		user.Driver = &driver
		if err := tx.Save(user).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureCompanyExists(tx *gorm.DB, companyID uint) error {
	var company models.Company
	if result := tx.First(&company, companyID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return errors.New("company with the provided company_id does not exist")
		}
		return result.Error
	}
	return nil
}

func prepareUserResponse(user models.User) gin.H {
	responseUser := gin.H{
		"ID":         user.ID,
		"CreatedAt":  user.CreatedAt,
		"UpdatedAt":  user.UpdatedAt,
		"name":       user.Name,
		"email":      user.Email,
		"phone":      user.Phone,
		"role":       user.Role,
		"company_id": user.CompanyID,
	}
	if user.Company != nil {
		responseUser["company"] = user.Company
	}
	if user.Driver != nil {
		responseUser["driver"] = user.Driver
	}
	return responseUser
}
