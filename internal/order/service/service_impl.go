package service

import (
	"context"
	"strings"
	"time"

	"github.com/autoparts/catalog/internal/order/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("order.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

const defaultListLimit = 50

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.CreateResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	type line struct {
		productID int64
		qty       int
	}
	lines := make([]line, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := snowflake.ParseString(strings.TrimSpace(item.ProductID))
		if err != nil {
			return nil, domain.ErrInvalidProduct
		}
		if item.Qty <= 0 {
			return nil, domain.ErrInvalidQty
		}
		lines = append(lines, line{productID: productID.Int64(), qty: item.Qty})
	}

	distinct := make([]int64, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, l := range lines {
		if !seen[l.productID] {
			seen[l.productID] = true
			distinct = append(distinct, l.productID)
		}
	}

	orderID := s.genID.Generate().Int64()
	now := time.Now().UTC()

	// Prices are read and snapshotted inside the same transaction as the
	// insert so a concurrent price update cannot split an order.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prices, err := s.repo.ProductPrices(ctx, tx, distinct)
		if err != nil {
			return err
		}
		if len(prices) != len(distinct) {
			return domain.ErrProductNotFound
		}

		order := &domain.Order{
			ID:              orderID,
			Status:          domain.StatusNew,
			CustomerName:    optional(req.CustomerName),
			CustomerPhone:   optional(req.CustomerPhone),
			CustomerComment: optional(req.CustomerComment),
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		items := make([]domain.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, domain.OrderItem{
				ID:         s.genID.Generate().Int64(),
				OrderID:    orderID,
				ProductID:  l.productID,
				Qty:        l.qty,
				PriceCents: prices[l.productID],
			})
		}

		return s.repo.Create(ctx, tx, order, items)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order created",
		zap.Int64("order_id", orderID),
		zap.Int("items", len(lines)),
	)

	return &domain.CreateResponse{OrderID: snowflake.ID(orderID).String()}, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.ListItem, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	orders, err := s.repo.FindAll(ctx, s.db, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ListItem, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, domain.ListItem{
			ID:            snowflake.ID(o.ID).String(),
			CreatedAt:     o.CreatedAt,
			Status:        o.Status,
			CustomerName:  deref(o.CustomerName),
			CustomerPhone: deref(o.CustomerPhone),
		})
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Details, error) {
	orderID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	order, err := s.repo.FindByID(ctx, s.db, orderID.Int64())
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	rows, err := s.repo.FindItems(ctx, s.db, order.ID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ItemResponse{
			ProductID:  snowflake.ID(row.ProductID).String(),
			Name:       row.Name,
			Qty:        row.Qty,
			PriceCents: row.PriceCents,
		})
	}

	return &domain.Details{
		ID:              snowflake.ID(order.ID).String(),
		CreatedAt:       order.CreatedAt,
		Status:          order.Status,
		CustomerName:    deref(order.CustomerName),
		CustomerPhone:   deref(order.CustomerPhone),
		CustomerComment: deref(order.CustomerComment),
		Items:           items,
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	orderID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return domain.ErrInvalidID
	}

	status = strings.ToUpper(strings.TrimSpace(status))
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, s.db, orderID.Int64(), status)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrNotFound
	}
	return nil
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
