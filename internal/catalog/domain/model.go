package domain

import "time"

// Product is a catalog item identified by its part and OEM numbers.
// PartNumberNorm and OEMNumberNorm are derived from the raw values on
// every write and are never edited directly.
type Product struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"type:text;not null"`
	Description    string    `json:"description" gorm:"type:text;not null;default:''"`
	PartNumber     string    `json:"part_number" gorm:"type:text;not null"`
	OEMNumber      string    `json:"oem_number" gorm:"column:oem_number;type:text;not null;default:''"`
	PartNumberNorm string    `json:"-" gorm:"type:text;not null;uniqueIndex"`
	OEMNumberNorm  string    `json:"-" gorm:"column:oem_number_norm;type:text;not null;default:'';index"`
	PriceCents     int       `json:"price_cents" gorm:"not null"`
	Active         bool      `json:"active" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// CrossRef is an alternate code identifying the same physical part as its
// owning product. Rows are owned by the product and cascade on delete.
type CrossRef struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	ProductID    int64     `json:"product_id" gorm:"not null;index"`
	RefType      string    `json:"ref_type" gorm:"type:text;not null"`
	RefValue     string    `json:"ref_value" gorm:"type:text;not null"`
	RefValueNorm string    `json:"-" gorm:"type:text;not null;index"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CrossRef) TableName() string { return "product_cross_refs" }

const RefTypeCross = "CROSS"
