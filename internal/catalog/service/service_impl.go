package service

import (
	"context"
	"strings"
	"time"

	"github.com/autoparts/catalog/internal/catalog/domain"
	searchdomain "github.com/autoparts/catalog/internal/search/domain"
	"github.com/autoparts/catalog/pkg/db"
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
		log:   p.Log.Named("catalog.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	items, err := s.repo.FindAll(ctx, s.db, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, s.toResponse(&item, nil))
	}
	return resp, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	p, refs, err := s.buildProduct(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, s.db, p, refs); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicatePartNumber
		}
		return nil, err
	}

	s.log.Info("product created",
		zap.Int64("product_id", p.ID),
		zap.String("part_number_norm", p.PartNumberNorm),
	)

	resp := s.toResponse(p, refs)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	refs, err := s.repo.CrossRefs(ctx, s.db, item.ID)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(item, refs)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, id string, req domain.CreateRequest) (*domain.Response, error) {
	productID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	p, refs, err := s.buildProduct(req)
	if err != nil {
		return nil, err
	}
	p.ID = item.ID
	p.CreatedAt = item.CreatedAt
	for i := range refs {
		refs[i].ProductID = item.ID
	}

	if err := s.repo.Update(ctx, s.db, p, refs); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicatePartNumber
		}
		return nil, err
	}

	resp := s.toResponse(p, refs)
	return &resp, nil
}

// buildProduct validates the request and derives the normalized code
// columns. Normalized values are recomputed on every write; they are the
// equality keys the exact search tier depends on.
func (s *Service) buildProduct(req domain.CreateRequest) (*domain.Product, []domain.CrossRef, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, nil, domain.ErrInvalidName
	}

	partNumber := strings.TrimSpace(req.PartNumber)
	if partNumber == "" {
		return nil, nil, domain.ErrInvalidPartNumber
	}

	if req.PriceCents < 0 {
		return nil, nil, domain.ErrInvalidPrice
	}

	oemNumber := strings.TrimSpace(req.OEMNumber)
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:             s.genID.Generate().Int64(),
		Name:           name,
		Description:    strings.TrimSpace(req.Description),
		PartNumber:     partNumber,
		OEMNumber:      oemNumber,
		PartNumberNorm: searchdomain.NormalizeCode(partNumber),
		OEMNumberNorm:  searchdomain.NormalizeCode(oemNumber),
		PriceCents:     req.PriceCents,
		Active:         active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	refs := make([]domain.CrossRef, 0, len(req.CrossRefs))
	seen := make(map[string]bool, len(req.CrossRefs))
	for _, raw := range req.CrossRefs {
		value := strings.TrimSpace(raw)
		norm := searchdomain.NormalizeCode(value)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		refs = append(refs, domain.CrossRef{
			ID:           s.genID.Generate().Int64(),
			ProductID:    p.ID,
			RefType:      domain.RefTypeCross,
			RefValue:     value,
			RefValueNorm: norm,
			CreatedAt:    now,
		})
	}

	return p, refs, nil
}

func (s *Service) toResponse(p *domain.Product, refs []domain.CrossRef) domain.Response {
	resp := domain.Response{
		ID:          snowflake.ID(p.ID).String(),
		Name:        p.Name,
		Description: p.Description,
		PartNumber:  p.PartNumber,
		OEMNumber:   p.OEMNumber,
		PriceCents:  p.PriceCents,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	for _, ref := range refs {
		resp.CrossRefs = append(resp.CrossRefs, ref.RefValue)
	}
	return resp
}
