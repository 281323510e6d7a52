package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CartItem mirrors an OrderLineItem plus the owning product identity. Carts
// persist per browser (a cookie holds the cart id); they never become orders
// on the server side.
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CartID    uuid.UUID `gorm:"type:uuid;index" json:"-"`
	ProductID string    `gorm:"size:80" json:"productId"`
	Type      string    `gorm:"size:120" json:"type"`
	Color     string    `gorm:"size:60" json:"color"`
	Number    string    `gorm:"size:40" json:"number"`
	Category  Category  `gorm:"type:varchar(10)" json:"category"`
	Size      string    `gorm:"size:20" json:"size"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	ListPrice int64     `gorm:"not null;default:0" json:"listPrice"`
	SalePrice int64     `gorm:"not null;default:0" json:"salePrice"`
	CreatedAt time.Time `json:"-"`
}

// CartStore is the external key-value persistence for carts.
type CartStore interface {
	Load(ctx context.Context, cartID uuid.UUID) ([]CartItem, error)
	Save(ctx context.Context, cartID uuid.UUID, items []CartItem) error
	Clear(ctx context.Context, cartID uuid.UUID) error
}
