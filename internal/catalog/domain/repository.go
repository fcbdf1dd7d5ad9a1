package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product, refs []CrossRef) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product, refs []CrossRef) error
	CrossRefs(ctx context.Context, db *gorm.DB, productID int64) ([]CrossRef, error)
}
