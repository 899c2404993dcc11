package models

import (
	"time"
)

// Order statuses. Any other value is rejected at the API layer.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type User struct {
	ID           string `gorm:"primaryKey"            json:"id"`
	Username     string `gorm:"unique;not null"       json:"username"`
	PasswordHash string `gorm:"not null"              json:"-"`
	Role         string `gorm:"not null;default:user" json:"role"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
}

type RefreshToken struct {
	ID        uint   `gorm:"primaryKey"      json:"id"`
	Token     string `gorm:"unique;not null" json:"token"`
	UserID    string `gorm:"index;not null"  json:"user_id"`
	ExpiresAt int64  `gorm:"not null"        json:"expires_at"`
	Revoked   bool   `gorm:"default:false"   json:"revoked"`
}

type Category struct {
	ID            string `gorm:"primaryKey"      json:"id"`
	Name          string `gorm:"not null"        json:"name"`
	NameAr        string `gorm:"not null"        json:"nameAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`
	Image         string `json:"image"`
	Slug          string `gorm:"unique;not null" json:"slug"`
}

// Prices are decimal strings ("299.99") end to end; the store never does
// arithmetic on them.
type Product struct {
	ID            string   `gorm:"primaryKey"      json:"id"`
	Name          string   `gorm:"not null"        json:"name"`
	NameAr        string   `gorm:"not null"        json:"nameAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Price         string   `gorm:"not null"        json:"price"`
	OriginalPrice *string  `json:"originalPrice"`
	CategoryID    string   `gorm:"index;not null"  json:"categoryId"`
	Images        []string `gorm:"serializer:json" json:"images"`
	InStock       bool     `gorm:"default:true"    json:"inStock"`
	StockQuantity int      `json:"stockQuantity"`
	Featured      bool     `gorm:"index"           json:"featured"`
	IsNew         bool     `json:"isNew"`
	OnSale        bool     `json:"onSale"`
	Rating        *string  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
}

type CartItem struct {
	ID        string `gorm:"primaryKey"                 json:"id"`
	SessionID string `gorm:"index;not null"             json:"sessionId"`
	ProductID string `gorm:"not null"                   json:"productId"`
	Quantity  int    `gorm:"default:1;check:quantity>0" json:"quantity"`
}

type Order struct {
	ID              string    `gorm:"primaryKey"     json:"id"`
	SessionID       string    `gorm:"index;not null" json:"sessionId"`
	UserID          *string   `gorm:"index"          json:"userId,omitempty"`
	CustomerName    string    `gorm:"not null"       json:"customerName"`
	CustomerEmail   string    `gorm:"not null"       json:"customerEmail"`
	CustomerPhone   string    `gorm:"not null"       json:"customerPhone"`
	ShippingAddress string    `gorm:"not null"       json:"shippingAddress"`
	City            string    `gorm:"not null"       json:"city"`
	Notes           string    `json:"notes,omitempty"`
	Subtotal        string    `gorm:"not null"       json:"subtotal"`
	Shipping        string    `gorm:"not null"       json:"shipping"`
	Total           string    `gorm:"not null"       json:"total"`
	Status          string    `gorm:"not null"       json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OrderItem is a point-in-time snapshot: later product edits must not
// change what an order says was bought.
type OrderItem struct {
	ID            string `gorm:"primaryKey"     json:"id"`
	OrderID       string `gorm:"index;not null" json:"orderId"`
	ProductID     string `gorm:"not null"       json:"productId"`
	ProductName   string `gorm:"not null"       json:"productName"`
	ProductNameAr string `gorm:"not null"       json:"productNameAr"`
	Price         string `gorm:"not null"       json:"price"`
	Quantity      int    `gorm:"default:1"      json:"quantity"`
}
