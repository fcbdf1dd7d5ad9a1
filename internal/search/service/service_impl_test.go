package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	"github.com/autoparts/catalog/internal/config"
	"github.com/autoparts/catalog/internal/search/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type storeStub struct {
	mu sync.Mutex

	exactCalls    int
	fullTextCalls int
	fuzzyCalls    int

	exactResult    []catalogdomain.Product
	fullTextResult []catalogdomain.Product
	fuzzyResult    []catalogdomain.Product

	exactPrefix    bool
	fuzzyThreshold float64

	err error
}

func (s *storeStub) Exact(ctx context.Context, db *gorm.DB, qNorm string, includePrefix bool, limit int) ([]catalogdomain.Product, error) {
	s.mu.Lock()
	s.exactCalls++
	s.exactPrefix = includePrefix
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.exactResult, nil
}

func (s *storeStub) FullText(ctx context.Context, db *gorm.DB, query string, limit int) ([]catalogdomain.Product, error) {
	s.mu.Lock()
	s.fullTextCalls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.fullTextResult, nil
}

func (s *storeStub) Fuzzy(ctx context.Context, db *gorm.DB, query string, threshold float64, limit int) ([]catalogdomain.Product, error) {
	s.mu.Lock()
	s.fuzzyCalls++
	s.fuzzyThreshold = threshold
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.fuzzyResult, nil
}

func setupSearchService(t *testing.T, store domain.Store, limit int) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Cfg:   config.Config{SearchResultLimit: limit},
		Store: store,
	})
}

func products(n int) []catalogdomain.Product {
	items := make([]catalogdomain.Product, n)
	for i := range items {
		items[i] = catalogdomain.Product{ID: int64(i + 1), Name: "Part", PartNumber: "P1"}
	}
	return items
}

func TestSearchEmptyQuery(t *testing.T) {
	store := &storeStub{}
	svc := setupSearchService(t, store, 20)

	for _, q := range []string{"", "   ", "\t\n"} {
		result, err := svc.Search(context.Background(), q, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.TierEmpty, result.Mode)
		assert.Empty(t, result.Items)
	}

	assert.Equal(t, 0, store.exactCalls)
	assert.Equal(t, 0, store.fullTextCalls)
	assert.Equal(t, 0, store.fuzzyCalls)
}

func TestSearchExactShortCircuits(t *testing.T) {
	store := &storeStub{exactResult: products(2)}
	svc := setupSearchService(t, store, 20)

	result, err := svc.Search(context.Background(), "0986AF0709", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.TierExact, result.Mode)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 1, store.exactCalls)
	assert.Equal(t, 0, store.fullTextCalls)
	assert.Equal(t, 0, store.fuzzyCalls)
}

func TestSearchCodeLikeEnablesPrefixAndSkipsFullText(t *testing.T) {
	store := &storeStub{}
	svc := setupSearchService(t, store, 20)

	// Normalizes to BREMBOP85020: code-like, so fts is skipped entirely.
	result, err := svc.Search(context.Background(), "brembo-p85020", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.TierFuzzy, result.Mode)
	assert.True(t, store.exactPrefix)
	assert.Equal(t, 1, store.exactCalls)
	assert.Equal(t, 0, store.fullTextCalls)
	assert.Equal(t, 1, store.fuzzyCalls)
}

func TestSearchShortCodeDisablesPrefix(t *testing.T) {
	store := &storeStub{exactResult: products(1)}
	svc := setupSearchService(t, store, 20)

	result, err := svc.Search(context.Background(), "P70", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.TierExact, result.Mode)
	assert.False(t, store.exactPrefix)
}

func TestSearchFallsToFullText(t *testing.T) {
	store := &storeStub{fullTextResult: products(1)}
	svc := setupSearchService(t, store, 20)

	result, err := svc.Search(context.Background(), "oil", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.TierFTS, result.Mode)
	assert.Equal(t, 1, store.exactCalls)
	assert.Equal(t, 1, store.fullTextCalls)
	assert.Equal(t, 0, store.fuzzyCalls)
}

func TestSearchFallsToFuzzy(t *testing.T) {
	store := &storeStub{fuzzyResult: products(1)}
	svc := setupSearchService(t, store, 20)

	result, err := svc.Search(context.Background(), "oil!", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.TierFuzzy, result.Mode)
	assert.Equal(t, 1, store.exactCalls)
	assert.Equal(t, 1, store.fullTextCalls)
	assert.Equal(t, 1, store.fuzzyCalls)
	assert.Equal(t, 0.30, store.fuzzyThreshold)
}

func TestSearchFuzzyThresholdByLength(t *testing.T) {
	cases := []struct {
		query     string
		threshold float64
	}{
		{"окт", 0.35},
		{"окта", 0.30},
		{"октав", 0.25},
		{"октави", 0.25},
		{"октавиа", 0.20},
	}

	for _, tc := range cases {
		store := &storeStub{}
		svc := setupSearchService(t, store, 20)

		result, err := svc.Search(context.Background(), tc.query, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.TierFuzzy, result.Mode)
		assert.Equal(t, tc.threshold, store.fuzzyThreshold, "query %q", tc.query)
	}
}

func TestSearchBelowFuzzyFloor(t *testing.T) {
	store := &storeStub{}
	svc := setupSearchService(t, store, 20)

	result, err := svc.Search(context.Background(), "xz", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.TierFuzzy, result.Mode)
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	// The exact tier still runs: two characters can be a valid short code.
	assert.Equal(t, 1, store.exactCalls)
	assert.Equal(t, 0, store.fullTextCalls)
	assert.Equal(t, 0, store.fuzzyCalls)
}

func TestSearchSymbolOnlyQuerySkipsExact(t *testing.T) {
	store := &storeStub{}
	svc := setupSearchService(t, store, 20)

	// Normalizes to nothing, so there is no code to equality-match.
	result, err := svc.Search(context.Background(), "???", 0)
	require.NoError(t, err)

	assert.Equal(t, domain.TierFuzzy, result.Mode)
	assert.Equal(t, 0, store.exactCalls)
	assert.Equal(t, 1, store.fullTextCalls)
	assert.Equal(t, 1, store.fuzzyCalls)
}

func TestSearchCapsResults(t *testing.T) {
	store := &storeStub{exactResult: products(30)}
	svc := setupSearchService(t, store, 20)

	result, err := svc.Search(context.Background(), "P7079", 5)
	require.NoError(t, err)

	assert.Equal(t, domain.TierExact, result.Mode)
	assert.Len(t, result.Items, 5)
}

func TestSearchUsesConfiguredDefaultLimit(t *testing.T) {
	store := &storeStub{exactResult: products(30)}
	svc := setupSearchService(t, store, 10)

	result, err := svc.Search(context.Background(), "P7079", 0)
	require.NoError(t, err)

	assert.Len(t, result.Items, 10)
}

func TestSearchStoreErrorAborts(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &storeStub{err: storeErr}
	svc := setupSearchService(t, store, 20)

	result, err := svc.Search(context.Background(), "bosch", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, result)

	// On a store failure no later tier runs; errors never degrade to a
	// lower tier.
	assert.Equal(t, 1, store.exactCalls)
	assert.Equal(t, 0, store.fullTextCalls)
	assert.Equal(t, 0, store.fuzzyCalls)
}
