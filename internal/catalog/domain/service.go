package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	Update(ctx context.Context, id string, req CreateRequest) (*Response, error)
}

type ListRequest struct {
	Limit  int
	Offset int
}

type CreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PartNumber  string   `json:"part_number"`
	OEMNumber   string   `json:"oem_number"`
	PriceCents  int      `json:"price_cents"`
	Active      *bool    `json:"active"`
	CrossRefs   []string `json:"cross_refs"`
}

type Response struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PartNumber  string    `json:"part_number"`
	OEMNumber   string    `json:"oem_number"`
	PriceCents  int       `json:"price_cents"`
	Active      bool      `json:"active"`
	CrossRefs   []string  `json:"cross_refs,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrInvalidName         = errors.New("invalid_name")
	ErrInvalidPartNumber   = errors.New("invalid_part_number")
	ErrDuplicatePartNumber = errors.New("duplicate_part_number")
	ErrInvalidPrice        = errors.New("invalid_price")
	ErrInvalidID           = errors.New("invalid_id")
	ErrNotFound            = errors.New("not_found")
)
