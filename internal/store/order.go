package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/models"
)

func (s *Store) GetOrders(ctx context.Context, sessionID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrdersByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAllOrders backs the admin order list, most recent first.
func (s *Store) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder assigns the id and creation timestamp server-side and stores
// the rest verbatim; the submitted totals are trusted.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = uuid.NewString()
	if err := s.DB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.DB.WithContext(ctx).Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Store) GetOrderItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := s.DB.WithContext(ctx).Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateOrderItem appends a single line item. No existence check on the
// referenced order or product; callers validate.
func (s *Store) CreateOrderItem(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	item.ID = uuid.NewString()
	if err := s.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// PlaceOrder records the order with its line items and clears the session's
// cart in one transaction. A failed item insert rolls everything back: no
// half-created orders, and the cart is only cleared once the order is in.
func (s *Store) PlaceOrder(ctx context.Context, order *models.Order, items []models.OrderItem) (*models.Order, []models.OrderItem, error) {
	order.ID = uuid.NewString()

	created := make([]models.OrderItem, 0, len(items))
	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, it := range items {
			it.ID = uuid.NewString()
			it.OrderID = order.ID
			if err := tx.Create(&it).Error; err != nil {
				return err
			}
			created = append(created, it)
		}

		return tx.Where("session_id = ?", order.SessionID).Delete(&models.CartItem{}).Error
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	return order, created, nil
}

func (s *Store) CountOrders(ctx context.Context) (int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
