package domain

import "time"

type Order struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Status          string    `json:"status" gorm:"type:text;not null;default:'NEW'"`
	CustomerName    *string   `json:"customer_name,omitempty" gorm:"type:text"`
	CustomerPhone   *string   `json:"customer_phone,omitempty" gorm:"type:text"`
	CustomerComment *string   `json:"customer_comment,omitempty" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Order) TableName() string { return "orders" }

// OrderItem snapshots the product price at capture time; later price edits
// never change an existing order.
type OrderItem struct {
	ID         int64 `json:"id" gorm:"primaryKey"`
	OrderID    int64 `json:"order_id" gorm:"not null;index"`
	ProductID  int64 `json:"product_id" gorm:"not null"`
	Qty        int   `json:"qty" gorm:"not null"`
	PriceCents int   `json:"price_cents" gorm:"not null"`
}

func (OrderItem) TableName() string { return "order_items" }

const (
	StatusNew       = "NEW"
	StatusConfirmed = "CONFIRMED"
	StatusDone      = "DONE"
	StatusCancelled = "CANCELLED"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusNew, StatusConfirmed, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}
