package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/repository"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/trips"
)

type dispatchInput struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	VehicleID uint `json:"vehicle_id" binding:"required"`
	DriverID  uint `json:"driver_id"`

	CargoWeight float64 `json:"cargo_weight" binding:"required"`
	CargoNotes  string  `json:"cargo_notes"`
	CargoValue  float64 `json:"cargo_value"`

	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`

	EstimatedFuelCost   float64    `json:"estimated_fuel_cost"`
	Priority            string     `json:"priority"`
	SpecialInstructions string     `json:"special_instructions"`
	PromisedAt          *time.Time `json:"promised_at"`
}

// DispatchTrip runs the capacity gate against the selected vehicle and, only
// when it passes, creates the confirmed order. Rejections return 422 with the
// validator's inline message and never touch the order store.
func DispatchTrip(c *gin.Context) {
	var input dispatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dispatch input: " + err.Error()})
		return
	}

	companyID := middleware.CompanyID(c)
	userID := middleware.UserID(c)

	// Vehicle selection is mandatory; without one there is no capacity to
	// validate against.
	var vehicle models.Vehicle
	if err := config.DB.Where("id = ? AND company_id = ?", input.VehicleID, companyID).First(&vehicle).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		return
	}

	dispatcher := trips.NewDispatcher(repository.NewOrderRepository(config.DB))
	order, verdict, err := dispatcher.Dispatch(c.Request.Context(), trips.DispatchInput{
		CompanyID:    companyID,
		DispatcherID: userID,

		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,

		VehicleID:       vehicle.ID,
		VehicleCapacity: vehicle.CapacityWeight,
		DriverID:        input.DriverID,

		CargoWeight: input.CargoWeight,
		CargoNotes:  input.CargoNotes,
		CargoValue:  input.CargoValue,

		Origin:      input.Origin,
		Destination: input.Destination,

		EstimatedFuelCost:   input.EstimatedFuelCost,
		Priority:            models.OrderPriority(input.Priority),
		SpecialInstructions: input.SpecialInstructions,
		PromisedAt:          input.PromisedAt,
	})
	if err != nil {
		logrus.WithError(err).Error("DispatchTrip: order creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip: " + err.Error()})
		return
	}
	if !verdict.Allowed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verdict.Message})
		return
	}

	// Best-effort last-use stamp for the dead-stock report.
	now := time.Now()
	if err := config.DB.Model(&vehicle).Update("last_used_at", now).Error; err != nil {
		logrus.WithError(err).Warn("DispatchTrip: could not stamp vehicle last_used_at")
	}

	drivers, vehicles, err := buildDirectories(companyID)
	if err != nil {
		logrus.WithError(err).Warn("DispatchTrip: directory load failed, projecting with empty lookups")
	}

	c.JSON(http.StatusCreated, gin.H{
		"order": order,
		"trip":  trips.ProjectTrip(*order, drivers, vehicles),
	})
}

// ListMyTrips returns every company order projected into its trip view.
func ListMyTrips(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	repo := repository.NewOrderRepository(config.DB)
	orders, err := repo.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching trips: " + err.Error()})
		return
	}

	drivers, vehicles, err := buildDirectories(companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading directories: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trips.ProjectTrips(orders, drivers, vehicles)})
}

func ListMyOrders(c *gin.Context) {
	companyID := middleware.CompanyID(c)

	repo := repository.NewOrderRepository(config.DB)
	orders, err := repo.ListByCompany(c.Request.Context(), companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func GetOrder(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	repo := repository.NewOrderRepository(config.DB)
	order, err := repo.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching order: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus advances the lifecycle status. Every change appends to
// the tracking trail; the trail itself is never rewritten.
func UpdateOrderStatus(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	userID := middleware.UserID(c)
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := models.OrderStatus(input.Status)
	if !models.KnownOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status: " + input.Status})
		return
	}

	repo := repository.NewOrderRepository(config.DB)
	order, err := repo.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error while fetching order: " + err.Error()})
		}
		return
	}

	now := time.Now()
	fields := map[string]interface{}{"status": status}
	if status == models.OrderDelivered && order.DeliveredAt == nil {
		fields["delivered_at"] = now
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		txRepo := repository.NewOrderRepository(tx)
		if err := txRepo.UpdateFields(c.Request.Context(), companyID, id, fields); err != nil {
			return err
		}
		return txRepo.AppendTracking(c.Request.Context(), &models.TrackingEvent{
			OrderID:   id,
			Status:    status,
			Timestamp: now,
			UpdatedBy: userID,
			Notes:     input.Notes,
		})
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status: " + err.Error()})
		return
	}

	updated, err := repo.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload order: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": updated})
}

// UpdatePaymentStatus changes payment state independently of delivery state.
func UpdatePaymentStatus(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	var input struct {
		PaymentStatus string `json:"payment_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	repo := repository.NewOrderRepository(config.DB)
	if _, err := repo.GetByID(c.Request.Context(), companyID, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := repo.UpdateFields(c.Request.Context(), companyID, id, map[string]interface{}{
		"payment_status": input.PaymentStatus,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
}

// DeleteOrder removes the order outright, items and trail included.
func DeleteOrder(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	id := c.Param("id")

	repo := repository.NewOrderRepository(config.DB)
	if err := repo.Delete(c.Request.Context(), companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// GetMyAssignedTrips lets an authenticated driver see their own trip board.
func GetMyAssignedTrips(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	userID := middleware.UserID(c)

	var driver models.Driver
	if err := config.DB.Where("user_id = ? AND company_id = ?", userID, companyID).First(&driver).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No driver profile linked to this account"})
		return
	}

	var orders []models.Order
	if err := config.DB.Where("company_id = ? AND assigned_driver_id = ?", companyID, driver.ID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching trips: " + err.Error()})
		return
	}

	drivers, vehicles, err := buildDirectories(companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading directories: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": trips.ProjectTrips(orders, drivers, vehicles)})
}

// buildDirectories loads the company's current driver and vehicle lookups for
// trip projection.
func buildDirectories(companyID uint) (trips.DriverDirectory, trips.VehicleDirectory, error) {
	var driverRecords []models.Driver
	if err := config.DB.Where("company_id = ?", companyID).Find(&driverRecords).Error; err != nil {
		return trips.DriverDirectory{}, trips.VehicleDirectory{}, err
	}
	var vehicleRecords []models.Vehicle
	if err := config.DB.Where("company_id = ?", companyID).Find(&vehicleRecords).Error; err != nil {
		return trips.DriverDirectory{}, trips.VehicleDirectory{}, err
	}

	drivers := make(trips.DriverDirectory, len(driverRecords))
	for _, d := range driverRecords {
		drivers[d.ID] = d.Name
	}
	vehicles := make(trips.VehicleDirectory, len(vehicleRecords))
	for _, v := range vehicleRecords {
		vehicles[v.ID] = trips.VehicleInfo{
			RegistrationNumber: v.RegistrationNumber,
			CapacityWeight:     v.CapacityWeight,
			Type:               v.Type,
		}
	}
	return drivers, vehicles, nil
}
