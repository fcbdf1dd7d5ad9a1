package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResponse, error)
	List(ctx context.Context, req ListRequest) ([]ListItem, error)
	Get(ctx context.Context, id string) (*Details, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type CreateItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type CreateRequest struct {
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerComment string              `json:"customer_comment"`
	Items           []CreateItemRequest `json:"items"`
}

type CreateResponse struct {
	OrderID string `json:"order_id"`
}

type ListRequest struct {
	Limit  int
	Offset int
}

type ListItem struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
}

type ItemResponse struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Qty        int    `json:"qty"`
	PriceCents int    `json:"price_cents"`
}

type Details struct {
	ID              string         `json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	Status          string         `json:"status"`
	CustomerName    string         `json:"customer_name,omitempty"`
	CustomerPhone   string         `json:"customer_phone,omitempty"`
	CustomerComment string         `json:"customer_comment,omitempty"`
	Items           []ItemResponse `json:"items"`
}

var (
	ErrEmptyItems      = errors.New("empty_items")
	ErrInvalidQty      = errors.New("invalid_qty")
	ErrInvalidProduct  = errors.New("invalid_product")
	ErrProductNotFound = errors.New("product_not_found")
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrNotFound        = errors.New("not_found")
)
