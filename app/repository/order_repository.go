package repository

import (
	"context"

	"github.com/ManuelReschke/PixelShop/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateIfNotExists relies on the unique session_id index: the insert is a
// no-op for a session that already has an order, so two racing callers never
// both create one and neither sees a constraint violation.
func (r *orderRepository) CreateIfNotExists(ctx context.Context, order *models.Order) (bool, *models.Order, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoNothing: true,
	}).Create(order)
	if tx.Error != nil {
		return false, nil, tx.Error
	}

	created := tx.RowsAffected > 0
	stored, err := r.GetBySessionID(ctx, order.SessionID)
	if err != nil {
		return false, nil, err
	}
	return created, stored, nil
}

// GetBySessionID retrieves an order by its checkout session id
func (r *orderRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetRecent retrieves the newest orders first
func (r *orderRepository) GetRecent(ctx context.Context, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").
		Limit(limit).Find(&orders).Error
	return orders, err
}

// Count returns the total number of orders
func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}
