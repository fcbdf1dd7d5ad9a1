package service

import (
	"context"
	"strings"
	"unicode/utf8"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	"github.com/autoparts/catalog/internal/config"
	"github.com/autoparts/catalog/internal/observability/metrics"
	"github.com/autoparts/catalog/internal/search/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Cfg     config.Config
	Store   domain.Store
	Metrics *metrics.SearchMetrics `optional:"true"`
}

// Service resolves a raw query through the exact -> fts -> fuzzy cascade.
// It is stateless per call and safe for concurrent use; all tier queries
// of one search run inside a single read transaction so concurrent
// catalog writes cannot make the tiers disagree about the data.
type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	store        domain.Store
	metrics      *metrics.SearchMetrics
	defaultLimit int
}

func New(p Params) domain.Service {
	limit := p.Cfg.SearchResultLimit
	if limit <= 0 {
		limit = 20
	}
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("search.service"),
		store:        p.Store,
		metrics:      p.Metrics,
		defaultLimit: limit,
	}
}

// Queries shorter than this (in runes, after trimming) are neither
// meaningful free text nor stable trigram input.
const minTextQueryLen = 3

// A normalized query at least this long is treated as a part code, which
// enables prefix matching in the exact tier and skips full-text entirely.
const minCodeLen = 4

func (s *Service) Search(ctx context.Context, rawQuery string, limit int) (*domain.Result, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	q := strings.TrimSpace(rawQuery)
	if q == "" {
		return s.finish(&domain.Result{Mode: domain.TierEmpty, Items: []catalogdomain.Product{}}), nil
	}

	qNorm := domain.NormalizeCode(q)
	qLen := utf8.RuneCountInString(q)
	looksLikeCode := len(qNorm) >= minCodeLen

	var result *domain.Result
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if qNorm != "" {
			items, err := s.store.Exact(ctx, tx, qNorm, looksLikeCode, limit)
			if err != nil {
				return err
			}
			if len(items) > 0 {
				result = &domain.Result{Mode: domain.TierExact, Items: capped(items, limit)}
				return nil
			}
		}

		// Full-text works for words, not for part codes or fragments.
		if !looksLikeCode && qLen >= minTextQueryLen {
			items, err := s.store.FullText(ctx, tx, q, limit)
			if err != nil {
				return err
			}
			if len(items) > 0 {
				result = &domain.Result{Mode: domain.TierFTS, Items: capped(items, limit)}
				return nil
			}
		}

		if qLen < minTextQueryLen {
			result = &domain.Result{Mode: domain.TierFuzzy, Items: []catalogdomain.Product{}}
			return nil
		}

		items, err := s.store.Fuzzy(ctx, tx, q, domain.ThresholdForLength(qLen), limit)
		if err != nil {
			return err
		}
		if items == nil {
			items = []catalogdomain.Product{}
		}
		result = &domain.Result{Mode: domain.TierFuzzy, Items: capped(items, limit)}
		return nil
	})
	if err != nil {
		s.log.Warn("search failed", zap.String("query", q), zap.Error(err))
		return nil, err
	}

	return s.finish(result), nil
}

func (s *Service) finish(result *domain.Result) *domain.Result {
	s.metrics.RecordSearch(string(result.Mode))
	return result
}

// capped defends the result-count contract against stores that ignore
// the limit they were given.
func capped(items []catalogdomain.Product, limit int) []catalogdomain.Product {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
