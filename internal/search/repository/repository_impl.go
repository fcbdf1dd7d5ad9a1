package repository

import (
	"context"
	"fmt"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	"github.com/autoparts/catalog/internal/search/domain"
	"gorm.io/gorm"
)

// store runs the per-tier matcher queries against postgres. Query text is
// always bound as a parameter, never concatenated into SQL.
type store struct{}

func Provide() domain.Store {
	return &store{}
}

const productColumns = `p.id, p.name, p.description, p.part_number, p.oem_number,
	p.part_number_norm, p.oem_number_norm, p.price_cents, p.active, p.created_at, p.updated_at`

func (s *store) Exact(ctx context.Context, db *gorm.DB, qNorm string, includePrefix bool, limit int) ([]catalogdomain.Product, error) {
	var items []catalogdomain.Product
	// UNION deduplicates products matched both directly and via a cross-ref.
	// The empty-norm guard keeps blank OEM columns from matching a query
	// that normalizes to nothing.
	err := db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s FROM products p
		WHERE (p.part_number_norm = ? AND p.part_number_norm <> '')
		   OR (p.oem_number_norm = ? AND p.oem_number_norm <> '')
		   OR (? AND p.part_number_norm LIKE ?)
		UNION
		SELECT %s FROM products p
		JOIN product_cross_refs r ON r.product_id = p.id
		WHERE r.ref_value_norm = ? AND r.ref_value_norm <> ''
		LIMIT ?`, productColumns, productColumns),
		qNorm, qNorm, includePrefix, qNorm+"%", qNorm, limit,
	).Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("exact search: %w", err)
	}
	return items, nil
}

func (s *store) FullText(ctx context.Context, db *gorm.DB, query string, limit int) ([]catalogdomain.Product, error) {
	var items []catalogdomain.Product
	err := db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s,
		       ts_rank(p.search_vector, websearch_to_tsquery('simple', ?)) AS rank
		FROM products p
		WHERE p.search_vector @@ websearch_to_tsquery('simple', ?)
		ORDER BY rank DESC, p.name ASC
		LIMIT ?`, productColumns),
		query, query, limit,
	).Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("fts search: %w", err)
	}
	return items, nil
}

func (s *store) Fuzzy(ctx context.Context, db *gorm.DB, query string, threshold float64, limit int) ([]catalogdomain.Product, error) {
	var items []catalogdomain.Product
	err := db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT %s,
		       GREATEST(
		           similarity(p.name, ?),
		           similarity(p.part_number_norm, ?),
		           similarity(p.oem_number_norm, ?)
		       ) AS score
		FROM products p
		WHERE similarity(p.name, ?) > ?
		   OR similarity(p.part_number_norm, ?) > ?
		   OR similarity(p.oem_number_norm, ?) > ?
		ORDER BY score DESC, p.name ASC
		LIMIT ?`, productColumns),
		query, query, query,
		query, threshold,
		query, threshold,
		query, threshold,
		limit,
	).Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("fuzzy search: %w", err)
	}
	return items, nil
}
