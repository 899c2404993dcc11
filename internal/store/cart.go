package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/models"
)

func (s *Store) GetCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.DB.WithContext(ctx).Where("session_id = ?", sessionID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetCartItem(ctx context.Context, id string) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// AddToCart is an idempotent upsert keyed on (session, product): adding an
// existing pair increments its quantity instead of creating a second row.
func (s *Store) AddToCart(ctx context.Context, sessionID, productID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	var item models.CartItem
	tx := s.DB.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item)
	if tx.Error == nil {
		item.Quantity += quantity
		if err := s.DB.WithContext(ctx).Save(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, tx.Error
	}

	newItem := models.CartItem{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.DB.WithContext(ctx).Create(&newItem).Error; err != nil {
		return nil, err
	}
	return &newItem, nil
}

// UpdateCartItem overwrites the quantity. Callers must route non-positive
// quantities to RemoveFromCart; the store never keeps a quantity below 1.
func (s *Store) UpdateCartItem(ctx context.Context, id string, quantity int) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.DB.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) RemoveFromCart(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.CartItem{}).Error
}

func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	return s.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
}
