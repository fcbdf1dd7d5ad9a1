package seed

import (
	"testing"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&catalogdomain.Product{}, &catalogdomain.CrossRef{}))
	return db
}

func TestEnsureDemoCatalog(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, EnsureDemoCatalog(db))

	var count int64
	require.NoError(t, db.Model(&catalogdomain.Product{}).Count(&count).Error)
	assert.Equal(t, int64(demoCatalogSize), count)

	// The demo Bosch filter keeps its well-known OEM number, normalized.
	var bosch catalogdomain.Product
	require.NoError(t, db.First(&bosch, "oem_number_norm = ?", "0986AF0709").Error)
	assert.Contains(t, bosch.Name, "Bosch Oil Filter")

	var refs int64
	require.NoError(t, db.Model(&catalogdomain.CrossRef{}).Count(&refs).Error)
	assert.Greater(t, refs, int64(0))
}

func TestEnsureDemoCatalogIdempotent(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, EnsureDemoCatalog(db))
	require.NoError(t, EnsureDemoCatalog(db))

	var count int64
	require.NoError(t, db.Model(&catalogdomain.Product{}).Count(&count).Error)
	assert.Equal(t, int64(demoCatalogSize), count)
}

func TestEnsureDemoCatalogNilDB(t *testing.T) {
	assert.Error(t, EnsureDemoCatalog(nil))
}
