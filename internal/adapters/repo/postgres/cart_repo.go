package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

// CartRepo persists cart lines keyed by the cart id the browser cookie
// carries. It is the only database-backed piece of the system; orders
// themselves are never stored.
type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) Load(ctx context.Context, cartID uuid.UUID) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Save replaces the whole cart in one transaction; partial carts are never
// visible to a concurrent load.
func (r *CartRepo) Save(ctx context.Context, cartID uuid.UUID, items []domain.CartItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		now := time.Now()
		for i := range items {
			if items[i].ID == uuid.Nil {
				items[i].ID = uuid.New()
			}
			items[i].CartID = cartID
			if items[i].CreatedAt.IsZero() {
				items[i].CreatedAt = now
			}
		}
		return tx.Create(&items).Error
	})
}

func (r *CartRepo) Clear(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&domain.CartItem{}).Error
}
