// Package repository wraps the persistence collaborator for orders. This is
// the only place that does raw I/O for the orders collection; the trips and
// analytics packages stay pure and receive already-loaded records.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Manthan-Thakar/FleetFlow-sub000/internal/models"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(o).Error
}

func (r *OrderRepository) GetByID(ctx context.Context, companyID uint, id string) (*models.Order, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var o models.Order
	err := db.Preload("Items").Preload("Tracking").
		Where("id = ? AND company_id = ?", id, companyID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListByCompany(ctx context.Context, companyID uint) ([]models.Order, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var orders []models.Order
	err := db.Preload("Items").Preload("Tracking").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateFields applies a partial update and lets gorm refresh updated_at.
func (r *OrderRepository) UpdateFields(ctx context.Context, companyID uint, id string, fields map[string]interface{}) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Model(&models.Order{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Updates(fields).Error
}

// AppendTracking inserts one status-change event. Events are append-only;
// nothing in this repository updates or removes them.
func (r *OrderRepository) AppendTracking(ctx context.Context, ev *models.TrackingEvent) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(ev).Error
}

// Delete hard-deletes an order with its items and tracking trail. There is no
// soft delete for orders.
func (r *OrderRepository) Delete(ctx context.Context, companyID uint, id string) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var o models.Order
		if err := tx.Where("id = ? AND company_id = ?", id, companyID).First(&o).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.CargoItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.TrackingEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&o).Error
	})
}

// NextOrderNumber reserves the next TRP number for a company. The increment
// runs as a single UPDATE ... RETURNING, so two concurrent dispatches always
// observe distinct sequence values.
func (r *OrderRepository) NextOrderNumber(ctx context.Context, companyID uint) (string, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return "", fmt.Errorf("repo db is nil")
	}
	var seq int64
	err := db.Raw(
		"UPDATE companies SET order_seq = order_seq + 1 WHERE id = ? RETURNING order_seq",
		companyID,
	).Scan(&seq).Error
	if err != nil {
		return "", err
	}
	if seq == 0 {
		return "", fmt.Errorf("company %d not found", companyID)
	}
	return fmt.Sprintf("TRP-%03d", seq), nil
}
