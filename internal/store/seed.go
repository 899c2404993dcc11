package store

import (
	"context"

	"github.com/zakihadj/souq/internal/models"
)

func strPtr(s string) *string { return &s }

// Seed loads the catalog once per process. Users, carts and orders always
// start empty; only categories and products are re-created on restart.
func (s *Store) Seed(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{
			Name:          "Electronics",
			NameAr:        "إلكترونيات",
			Description:   "Electronic devices and accessories",
			DescriptionAr: "أجهزة إلكترونية وملحقاتها",
			Image:         "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400",
			Slug:          "electronics",
		},
		{
			Name:          "Clothing",
			NameAr:        "ملابس",
			Description:   "Fashion and apparel",
			DescriptionAr: "أزياء وملابس",
			Image:         "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?w=400",
			Slug:          "clothing",
		},
		{
			Name:          "Home & Kitchen",
			NameAr:        "منزل ومطبخ",
			Description:   "Home and kitchen essentials",
			DescriptionAr: "مستلزمات المنزل والمطبخ",
			Image:         "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400",
			Slug:          "home-kitchen",
		},
		{
			Name:          "Beauty",
			NameAr:        "جمال وعناية",
			Description:   "Beauty and personal care",
			DescriptionAr: "منتجات الجمال والعناية الشخصية",
			Image:         "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400",
			Slug:          "beauty",
		},
		{
			Name:          "Sports",
			NameAr:        "رياضة",
			Description:   "Sports and fitness equipment",
			DescriptionAr: "معدات رياضية ولياقة",
			Image:         "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?w=400",
			Slug:          "sports",
		},
		{
			Name:          "Books",
			NameAr:        "كتب",
			Description:   "Books and reading materials",
			DescriptionAr: "كتب ومواد قراءة",
			Image:         "https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=400",
			Slug:          "books",
		},
	}

	categoryIDs := make([]string, 0, len(categories))
	for i := range categories {
		created, err := s.CreateCategory(ctx, &categories[i])
		if err != nil {
			return err
		}
		categoryIDs = append(categoryIDs, created.ID)
	}

	products := []struct {
		categoryIndex int
		product       models.Product
	}{
		{0, models.Product{
			Name:          "Wireless Bluetooth Headphones",
			NameAr:        "سماعات بلوتوث لاسلكية",
			Description:   "High-quality wireless headphones with active noise cancellation",
			DescriptionAr: "سماعات لاسلكية عالية الجودة مع خاصية إلغاء الضوضاء النشط، توفر صوتاً نقياً وبطارية تدوم حتى 30 ساعة",
			Price:         "299.99",
			OriginalPrice: strPtr("399.99"),
			Images: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800",
			},
			InStock: true, StockQuantity: 50,
			Featured: true, IsNew: true, OnSale: true,
			Rating: strPtr("4.8"), ReviewCount: 245,
		}},
		{0, models.Product{
			Name:          "Smart Watch Pro",
			NameAr:        "ساعة ذكية برو",
			Description:   "Advanced smartwatch with health monitoring",
			DescriptionAr: "ساعة ذكية متطورة مع مراقبة الصحة واللياقة البدنية، مقاومة للماء ومتوافقة مع جميع الهواتف",
			Price:         "549.00",
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800",
			},
			InStock: true, StockQuantity: 30,
			Featured: true, IsNew: true,
			Rating: strPtr("4.6"), ReviewCount: 128,
		}},
		{0, models.Product{
			Name:          "Portable Power Bank 20000mAh",
			NameAr:        "شاحن متنقل 20000 مللي أمبير",
			Description:   "Fast charging portable power bank",
			DescriptionAr: "شاحن متنقل بسعة كبيرة مع شحن سريع، يدعم شحن جهازين في نفس الوقت",
			Price:         "89.00",
			OriginalPrice: strPtr("119.00"),
			Images: []string{
				"https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
			},
			InStock: true, StockQuantity: 100,
			OnSale: true,
			Rating: strPtr("4.5"), ReviewCount: 89,
		}},
		{1, models.Product{
			Name:          "Premium Cotton T-Shirt",
			NameAr:        "تيشيرت قطن فاخر",
			Description:   "Comfortable premium cotton t-shirt",
			DescriptionAr: "تيشيرت من القطن الفاخر بتصميم عصري، متوفر بعدة ألوان وأحجام",
			Price:         "79.00",
			Images: []string{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800",
			},
			InStock: true, StockQuantity: 200,
			Featured: true,
			Rating:   strPtr("4.7"), ReviewCount: 312,
		}},
		{1, models.Product{
			Name:          "Classic Denim Jacket",
			NameAr:        "جاكيت جينز كلاسيكي",
			Description:   "Timeless denim jacket for all seasons",
			DescriptionAr: "جاكيت جينز كلاسيكي بقصة مريحة، مناسب لجميع المواسم والمناسبات",
			Price:         "249.00",
			OriginalPrice: strPtr("329.00"),
			Images: []string{
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800",
			},
			InStock: true, StockQuantity: 35,
			Featured: true, OnSale: true,
			Rating: strPtr("4.5"), ReviewCount: 156,
		}},
		{2, models.Product{
			Name:          "Coffee Maker Machine",
			NameAr:        "ماكينة صنع القهوة",
			Description:   "Automatic coffee maker with grinder",
			DescriptionAr: "ماكينة قهوة أوتوماتيكية مع مطحنة مدمجة، تحضر قهوة طازجة في دقائق",
			Price:         "599.00",
			OriginalPrice: strPtr("749.00"),
			Images: []string{
				"https://images.unsplash.com/photo-1517668808822-9ebb02f2a0e6?w=800",
			},
			InStock: true, StockQuantity: 25,
			Featured: true, OnSale: true,
			Rating: strPtr("4.6"), ReviewCount: 178,
		}},
		{2, models.Product{
			Name:          "Smart Air Purifier",
			NameAr:        "منقي هواء ذكي",
			Description:   "HEPA air purifier with smart controls",
			DescriptionAr: "منقي هواء بفلتر HEPA يزيل 99.9% من الملوثات، يمكن التحكم به عبر التطبيق",
			Price:         "699.00",
			OriginalPrice: strPtr("899.00"),
			Images: []string{
				"https://images.unsplash.com/photo-1585771724684-38269d6639fd?w=800",
			},
			InStock: true, StockQuantity: 20,
			Featured: true, OnSale: true,
			Rating: strPtr("4.7"), ReviewCount: 134,
		}},
		{3, models.Product{
			Name:          "Luxury Skincare Set",
			NameAr:        "مجموعة عناية بالبشرة فاخرة",
			Description:   "Complete skincare routine set",
			DescriptionAr: "مجموعة متكاملة للعناية بالبشرة تشمل غسول ومرطب وسيروم بمكونات طبيعية",
			Price:         "399.00",
			OriginalPrice: strPtr("499.00"),
			Images: []string{
				"https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=800",
			},
			InStock: true, StockQuantity: 55,
			Featured: true, IsNew: true, OnSale: true,
			Rating: strPtr("4.9"), ReviewCount: 287,
		}},
		{4, models.Product{
			Name:          "Yoga Mat Premium",
			NameAr:        "سجادة يوغا فاخرة",
			Description:   "Extra thick non-slip yoga mat",
			DescriptionAr: "سجادة يوغا سميكة ومضادة للانزلاق، مثالية للتمارين المنزلية",
			Price:         "99.00",
			Images: []string{
				"https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=800",
			},
			InStock: true, StockQuantity: 80,
			Rating:  strPtr("4.6"), ReviewCount: 198,
		}},
		{5, models.Product{
			Name:          "Arabic Literature Collection",
			NameAr:        "مجموعة الأدب العربي",
			Description:   "Classic Arabic literature books collection",
			DescriptionAr: "مجموعة من أروع الأعمال الأدبية العربية الكلاسيكية والمعاصرة",
			Price:         "149.00",
			Images: []string{
				"https://images.unsplash.com/photo-1495446815901-a7297e633e8d?w=800",
			},
			InStock: true, StockQuantity: 60,
			IsNew:   true,
			Rating:  strPtr("4.9"), ReviewCount: 234,
		}},
	}

	for _, p := range products {
		prod := p.product
		prod.CategoryID = categoryIDs[p.categoryIndex]
		if _, err := s.CreateProduct(ctx, &prod); err != nil {
			return err
		}
	}

	return nil
}
