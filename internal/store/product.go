package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/models"
)

func (s *Store) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.WithContext(ctx).Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.WithContext(ctx).Where("featured = ?", true).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts is a case-insensitive substring match over the bilingual
// name and description fields. No ranking; catalog scale does not need it.
func (s *Store) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	like := "%" + strings.ToLower(query) + "%"
	raw := "%" + query + "%"

	var products []models.Product
	err := s.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR name_ar LIKE ? OR LOWER(description) LIKE ? OR description_ar LIKE ?",
			like, raw, like, raw).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	product.ID = uuid.NewString()
	if err := s.DB.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// ProductUpdate carries optional patch fields; nil leaves the field alone.
type ProductUpdate struct {
	Name          *string   `json:"name"`
	NameAr        *string   `json:"nameAr"`
	Description   *string   `json:"description"`
	DescriptionAr *string   `json:"descriptionAr"`
	Price         *string   `json:"price"`
	OriginalPrice *string   `json:"originalPrice"`
	CategoryID    *string   `json:"categoryId"`
	Images        *[]string `json:"images"`
	InStock       *bool     `json:"inStock"`
	StockQuantity *int      `json:"stockQuantity"`
	Featured      *bool     `json:"featured"`
	IsNew         *bool     `json:"isNew"`
	OnSale        *bool     `json:"onSale"`
}

func (s *Store) UpdateProduct(ctx context.Context, id string, upd ProductUpdate) (*models.Product, error) {
	var product models.Product
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}

	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.NameAr != nil {
		product.NameAr = *upd.NameAr
	}
	if upd.Description != nil {
		product.Description = *upd.Description
	}
	if upd.DescriptionAr != nil {
		product.DescriptionAr = *upd.DescriptionAr
	}
	if upd.Price != nil {
		product.Price = *upd.Price
	}
	if upd.OriginalPrice != nil {
		product.OriginalPrice = upd.OriginalPrice
	}
	if upd.CategoryID != nil {
		product.CategoryID = *upd.CategoryID
	}
	if upd.Images != nil {
		product.Images = *upd.Images
	}
	if upd.InStock != nil {
		product.InStock = *upd.InStock
	}
	if upd.StockQuantity != nil {
		product.StockQuantity = *upd.StockQuantity
	}
	if upd.Featured != nil {
		product.Featured = *upd.Featured
	}
	if upd.IsNew != nil {
		product.IsNew = *upd.IsNew
	}
	if upd.OnSale != nil {
		product.OnSale = *upd.OnSale
	}

	if err := s.DB.WithContext(ctx).Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := s.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
