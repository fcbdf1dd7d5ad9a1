package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, order *Order, items []OrderItem) error
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]Order, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	FindItems(ctx context.Context, db *gorm.DB, orderID int64) ([]ItemRow, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) (bool, error)
	ProductPrices(ctx context.Context, db *gorm.DB, productIDs []int64) (map[int64]int, error)
}

// ItemRow is an order line joined with its product name.
type ItemRow struct {
	ProductID  int64
	Name       string
	Qty        int
	PriceCents int
}
