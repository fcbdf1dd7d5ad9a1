package repository

import (
	"context"
	"errors"

	"github.com/autoparts/catalog/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product, refs []domain.CrossRef) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		if len(refs) == 0 {
			return nil
		}
		return tx.Create(&refs).Error
	})
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update rewrites the product row and replaces its cross-references
// wholesale. Stale refs must not survive a code change, so delete+insert
// beats any diffing.
func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product, refs []domain.CrossRef) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Product{}).
			Where("id = ?", product.ID).
			Updates(map[string]any{
				"name":             product.Name,
				"description":      product.Description,
				"part_number":      product.PartNumber,
				"oem_number":       product.OEMNumber,
				"part_number_norm": product.PartNumberNorm,
				"oem_number_norm":  product.OEMNumberNorm,
				"price_cents":      product.PriceCents,
				"active":           product.Active,
				"updated_at":       product.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", product.ID).
			Delete(&domain.CrossRef{}).Error; err != nil {
			return err
		}
		if len(refs) == 0 {
			return nil
		}
		return tx.Create(&refs).Error
	})
}

func (r *repo) CrossRefs(ctx context.Context, db *gorm.DB, productID int64) ([]domain.CrossRef, error) {
	var refs []domain.CrossRef
	err := db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("ref_value ASC").
		Find(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
