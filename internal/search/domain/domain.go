package domain

import (
	"context"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	"gorm.io/gorm"
)

// Tier names the matching strategy that satisfied a search.
type Tier string

const (
	TierEmpty Tier = "empty"
	TierExact Tier = "exact"
	TierFTS   Tier = "fts"
	TierFuzzy Tier = "fuzzy"
)

// Result is the outcome of one tiered search: the winning tier and its
// ranked items, capped at the requested limit.
type Result struct {
	Mode  Tier                    `json:"mode"`
	Items []catalogdomain.Product `json:"items"`
}

// Store is the catalog-store surface the resolver queries, one method per
// matching tier. Every method binds the query text as a parameter and
// respects the result limit. Implementations never rank the exact tier;
// fts and fuzzy return rows ordered by relevance desc, name asc.
type Store interface {
	// Exact returns products whose normalized part or OEM number equals
	// qNorm, unioned with cross-reference hits, deduplicated by product id.
	// When includePrefix is set the normalized part number may also match
	// by prefix. Prefix matching never applies to OEM numbers: an OEM code
	// is a single canonical manufacturer number, and prefix-matching it
	// would fold unrelated ranges into "exact" results.
	Exact(ctx context.Context, db *gorm.DB, qNorm string, includePrefix bool, limit int) ([]catalogdomain.Product, error)

	// FullText runs a websearch-style query with the simple configuration
	// over name+description, ranked by relevance.
	FullText(ctx context.Context, db *gorm.DB, query string, limit int) ([]catalogdomain.Product, error)

	// Fuzzy returns products whose trigram similarity against name,
	// normalized part number or normalized OEM number exceeds threshold,
	// ranked by the greatest of the three scores.
	Fuzzy(ctx context.Context, db *gorm.DB, query string, threshold float64, limit int) ([]catalogdomain.Product, error)
}

// Service resolves a raw query through the exact -> fts -> fuzzy cascade.
// A limit <= 0 falls back to the configured default.
type Service interface {
	Search(ctx context.Context, rawQuery string, limit int) (*Result, error)
}
