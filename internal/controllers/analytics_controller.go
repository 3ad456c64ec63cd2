package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/analytics"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/config"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/middleware"
	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

// dashboardCacheTTL bounds how stale a cached dashboard may be.
const dashboardCacheTTL = 60 * time.Second

// dashboardPayload is the full analytics response the dashboard renders.
type dashboardPayload struct {
	Orders             analytics.OrderAnalytics       `json:"orders"`
	Fleet              analytics.FleetAnalytics       `json:"fleet"`
	Maintenance        analytics.MaintenanceAnalytics `json:"maintenance"`
	Drivers            []analytics.DriverPerformance  `json:"drivers"`
	TopPerformers      []analytics.DriverPerformance  `json:"top_performers"`
	NeedingImprovement []analytics.DriverPerformance  `json:"needing_improvement"`
	KPIs               analytics.FleetKPIs            `json:"kpis"`
	GeneratedAt        time.Time                      `json:"generated_at"`
}

// GetDashboard computes the company's full analytics snapshot. Results are
// cached in redis for a short TTL; cache trouble only logs, recomputing is
// always safe because the aggregations are pure.
func GetDashboard(c *gin.Context) {
	companyID := middleware.CompanyID(c)
	cacheKey := fmt.Sprintf("fleetflow:dashboard:%d", companyID)

	if config.RDB != nil {
		cached, err := config.RDB.Get(c.Request.Context(), cacheKey).Bytes()
		if err == nil {
			var payload dashboardPayload
			if json.Unmarshal(cached, &payload) == nil {
				c.JSON(http.StatusOK, gin.H{"data": payload, "cached": true})
				return
			}
		}
	}

	var orders []models.Order
	if err := config.DB.Where("company_id = ?", companyID).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders: " + err.Error()})
		return
	}
	var vehicles []models.Vehicle
	if err := config.DB.Where("company_id = ?", companyID).Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching vehicles: " + err.Error()})
		return
	}
	var drivers []models.Driver
	if err := config.DB.Where("company_id = ?", companyID).Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching drivers: " + err.Error()})
		return
	}
	var maintenance []models.MaintenanceRecord
	if err := config.DB.Where("company_id = ?", companyID).Find(&maintenance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching maintenance records: " + err.Error()})
		return
	}

	cfg := analytics.DefaultConfig()
	now := time.Now()
	perf := analytics.ComputeDriverPerformance(drivers)

	payload := dashboardPayload{
		Orders:             analytics.ComputeOrderAnalytics(orders),
		Fleet:              analytics.ComputeFleetAnalytics(vehicles, orders, cfg, now),
		Maintenance:        analytics.ComputeMaintenanceAnalytics(maintenance),
		Drivers:            perf,
		TopPerformers:      analytics.TopPerformers(perf, cfg),
		NeedingImprovement: analytics.NeedingImprovement(perf, cfg),
		KPIs:               analytics.ComputeFleetKPIs(drivers, vehicles),
		GeneratedAt:        now,
	}

	if config.RDB != nil {
		if raw, err := json.Marshal(payload); err == nil {
			if err := config.RDB.Set(c.Request.Context(), cacheKey, raw, dashboardCacheTTL).Err(); err != nil {
				logrus.WithError(err).Warn("GetDashboard: cache write failed")
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": payload})
}
