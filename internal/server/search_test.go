package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogdomain "github.com/autoparts/catalog/internal/catalog/domain"
	searchdomain "github.com/autoparts/catalog/internal/search/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type searchStub struct {
	result *searchdomain.Result
	err    error
	lastQ  string
}

func (s *searchStub) Search(ctx context.Context, rawQuery string, limit int) (*searchdomain.Result, error) {
	s.lastQ = rawQuery
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func setupSearchRouter(stub *searchStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())

	s := &Server{
		log:       zap.NewNop(),
		searchSvc: stub,
	}
	r.GET("/api/search", s.Search)
	return r
}

func TestSearchEndpointShape(t *testing.T) {
	stub := &searchStub{
		result: &searchdomain.Result{
			Mode: searchdomain.TierExact,
			Items: []catalogdomain.Product{
				{ID: 1, Name: "Bosch Oil Filter", PartNumber: "P7079", OEMNumber: "0986AF0709", PriceCents: 2500, Active: true},
			},
		},
	}
	r := setupSearchRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=0986AF0709", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0986AF0709", stub.lastQ)

	var body struct {
		Query string `json:"query"`
		Mode  string `json:"mode"`
		Items []struct {
			Name       string `json:"name"`
			PartNumber string `json:"part_number"`
			OEMNumber  string `json:"oem_number"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "0986AF0709", body.Query)
	assert.Equal(t, "exact", body.Mode)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "0986AF0709", body.Items[0].OEMNumber)
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	stub := &searchStub{
		result: &searchdomain.Result{Mode: searchdomain.TierEmpty, Items: []catalogdomain.Product{}},
	}
	r := setupSearchRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"query":"","mode":"empty","items":[]}`, w.Body.String())
}

func TestSearchEndpointStoreError(t *testing.T) {
	stub := &searchStub{err: errors.New("connection refused")}
	r := setupSearchRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/search?q=bosch", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body struct {
		Error struct {
			Type string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body.Error.Type)
}
