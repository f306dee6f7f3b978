package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/orgmatch/orgmatch/cache"
	"github.com/orgmatch/orgmatch/models"
	"github.com/orgmatch/orgmatch/providers"
	"github.com/orgmatch/orgmatch/services"
	orgtest "github.com/orgmatch/orgmatch/testing"
	"github.com/orgmatch/orgmatch/utils"
)

type stubSupplyReader struct {
	detail *models.SupplyDetail
	err    error
}

func (s *stubSupplyReader) GetActiveDetail(ctx context.Context, supplyID uint) (*models.SupplyDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func (s *stubSupplyReader) ListActiveWithOrg(ctx context.Context, excludeOrgID uint) ([]models.SupplyWithOrg, error) {
	return nil, nil
}

type stubDemandReader struct{}

func (s *stubDemandReader) GetActiveDetail(ctx context.Context, demandID uint) (*models.DemandDetail, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubDemandReader) ListActiveWithOrg(ctx context.Context, excludeOrgID uint) ([]models.DemandWithOrg, error) {
	return []models.DemandWithOrg{orgtest.MockDemandWithOrg(91, 12)}, nil
}

type stubMatcher struct {
	resp *models.MatchResponse
	err  error
}

func (s *stubMatcher) MatchSupplyToDemands(ctx context.Context, req *models.SupplyMatchRequest) (*models.MatchResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubMatcher) MatchDemandToSupplies(ctx context.Context, req *models.DemandMatchRequest) (*models.MatchResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubMatcher) IsAvailable(ctx context.Context) bool { return s.err == nil }

type stubSupplyWriter struct {
	deleteRows int64
}

func (s *stubSupplyWriter) Create(ctx context.Context, supply *models.Supply) error {
	supply.SupplyID = 42
	return nil
}

func (s *stubSupplyWriter) ListByOrg(ctx context.Context, orgID uint) ([]models.SupplyListItem, error) {
	return []models.SupplyListItem{}, nil
}

func (s *stubSupplyWriter) GetDetail(ctx context.Context, supplyID uint) (*models.SupplyDetail, error) {
	return orgtest.MockSupplyDetail(), nil
}

func (s *stubSupplyWriter) SoftDelete(ctx context.Context, supplyID, orgID uint) (int64, error) {
	return s.deleteRows, nil
}

type stubCategoryResolver struct{}

func (s *stubCategoryResolver) Upsert(ctx context.Context, name string) (uint, error) {
	return 5, nil
}

func (s *stubCategoryResolver) EnsureDefault(ctx context.Context) (uint, error) {
	return models.DefaultCategoryID, nil
}

type supplyHandlerFixture struct {
	router  *mux.Router
	reader  *stubSupplyReader
	matcher *stubMatcher
	redis   *miniredis.Miniredis
}

func newSupplyHandlerFixture(t *testing.T) *supplyHandlerFixture {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	redisCache := cache.CreateRedisCacheWithClient(client)

	reader := &stubSupplyReader{detail: orgtest.MockSupplyDetail()}
	matcher := &stubMatcher{resp: orgtest.MockMatchResponse(2)}

	fetcher := services.CreateFetcher(reader, &stubDemandReader{})
	searchService := services.CreateSearchService(fetcher, matcher, redisCache)
	supplyService := services.CreateSupplyService(&stubSupplyWriter{deleteRows: 1}, &stubCategoryResolver{}, searchService)

	handler := CreateSupplyHandler(supplyService, searchService)

	router := mux.NewRouter()
	router.HandleFunc("/api/supply", handler.HandleCreate).Methods("POST")
	router.HandleFunc("/api/supply", handler.HandleList).Methods("GET")
	router.HandleFunc("/api/supply/{id}", handler.HandleGet).Methods("GET")
	router.HandleFunc("/api/supply/{id}", handler.HandleDelete).Methods("DELETE")
	router.HandleFunc("/api/supply/{id}/search", handler.HandleSearch).Methods("GET")
	router.HandleFunc("/api/supply/{id}/cache", handler.HandleInvalidateCache).Methods("DELETE")

	return &supplyHandlerFixture{
		router:  router,
		reader:  reader,
		matcher: matcher,
		redis:   srv,
	}
}

func (fx *supplyHandlerFixture) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req = req.WithContext(utils.WithOrgID(req.Context(), 7))

	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

func TestSupplyHandler_Create(t *testing.T) {
	fx := newSupplyHandlerFixture(t)

	w := fx.do(t, http.MethodPost, "/api/supply", `{"item_name":"Rice","item_category":"Grains"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.CreateListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(42), resp.SupplyID)
	assert.Equal(t, "Supply listing created.", resp.Message)
}

func TestSupplyHandler_CreateValidation(t *testing.T) {
	fx := newSupplyHandlerFixture(t)

	t.Run("Malformed body", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/supply", `{not json`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing item_name", func(t *testing.T) {
		w := fx.do(t, http.MethodPost, "/api/supply", `{"item_category":"Grains"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "item_name is required.")
	})
}

func TestSupplyHandler_Search(t *testing.T) {
	fx := newSupplyHandlerFixture(t)

	w := fx.do(t, http.MethodGet, "/api/supply/42/search", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(42), resp.SupplyID)
	assert.False(t, resp.Cached)
	assert.Equal(t, 2, resp.TotalResults)

	// Second read is served from cache.
	w = fx.do(t, http.MethodGet, "/api/supply/42/search", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Cached)
	require.NotNil(t, resp.CacheExpiresInSeconds)
}

func TestSupplyHandler_SearchNotFound(t *testing.T) {
	fx := newSupplyHandlerFixture(t)
	fx.reader.err = gorm.ErrRecordNotFound

	w := fx.do(t, http.MethodGet, "/api/supply/9999/search", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Supply not found or inactive.")
}

func TestSupplyHandler_SearchWorkerFailure(t *testing.T) {
	fx := newSupplyHandlerFixture(t)
	fx.matcher.err = &providers.WorkerError{StatusCode: 500, Body: `{"detail":"boom"}`}

	w := fx.do(t, http.MethodGet, "/api/supply/42/search", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Matching worker failed.", resp.Error)
	assert.Contains(t, resp.Detail, "boom")
}

func TestSupplyHandler_InvalidID(t *testing.T) {
	fx := newSupplyHandlerFixture(t)

	w := fx.do(t, http.MethodGet, "/api/supply/abc/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid listing id.")
}

func TestSupplyHandler_InvalidateCache(t *testing.T) {
	fx := newSupplyHandlerFixture(t)

	// Warm the cache, drop it, and confirm the next search recomputes.
	w := fx.do(t, http.MethodGet, "/api/supply/42/search", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, fx.redis.Exists("search:supply:42"))

	w = fx.do(t, http.MethodDelete, "/api/supply/42/cache", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, fx.redis.Exists("search:supply:42"))

	// Idempotent: a second invalidation also succeeds.
	w = fx.do(t, http.MethodDelete, "/api/supply/42/cache", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSupplyHandler_Delete(t *testing.T) {
	fx := newSupplyHandlerFixture(t)

	w := fx.do(t, http.MethodDelete, "/api/supply/42", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Supply listing deleted.")
}
