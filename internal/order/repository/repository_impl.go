package repository

import (
	"context"
	"errors"

	"github.com/autoparts/catalog/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, order *domain.Order, items []domain.OrderItem) error {
	if err := db.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Create(&items).Error
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, limit, offset int) ([]domain.Order, error) {
	var orders []domain.Order
	err := db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Order, error) {
	var o domain.Order
	err := db.WithContext(ctx).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repo) FindItems(ctx context.Context, db *gorm.DB, orderID int64) ([]domain.ItemRow, error) {
	var rows []domain.ItemRow
	err := db.WithContext(ctx).Raw(`
		SELECT i.product_id, p.name, i.qty, i.price_cents
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?`,
		orderID,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) (bool, error) {
	res := db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": gorm.Expr("CURRENT_TIMESTAMP")})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repo) ProductPrices(ctx context.Context, db *gorm.DB, productIDs []int64) (map[int64]int, error) {
	type row struct {
		ID         int64
		PriceCents int
	}
	var rows []row
	err := db.WithContext(ctx).
		Table("products").
		Select("id", "price_cents").
		Where("id IN ?", productIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	prices := make(map[int64]int, len(rows))
	for _, r := range rows {
		prices[r.ID] = r.PriceCents
	}
	return prices, nil
}
