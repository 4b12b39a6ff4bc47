package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oncare/coverage-engine/api"
	"github.com/oncare/coverage-engine/factory"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	return api.NewRouter(api.NewHandler(factory.Defaults()))
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func sampleQuoteRequest() api.QuoteRequest {
	return api.QuoteRequest{
		Customer: "홍길동",
		Coverages: map[string]map[string]int64{
			"samsung": {"암직접치료보장": 1000, "암주요치료보장": 1000},
			"kb":      {"암 주요치료비": 500},
		},
		Years: []api.YearEventsDTO{
			{Year: 1, Events: []string{"수술"}},
		},
	}
}

// =============================================================================
// QUOTE ENDPOINTS
// =============================================================================

func TestCreateQuote_Success(t *testing.T) {
	router := setupRouter(t)

	rec := postJSON(t, router, "/api/quotes", sampleQuoteRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[api.QuoteResponseDTO](t, rec)
	assert.NotEmpty(t, resp.QuoteID)
	assert.Equal(t, "table", resp.RuleGeneration)
	assert.Equal(t, int64(2500), resp.CombinedTotal)
	require.Len(t, resp.Insurers, 2)
	assert.Equal(t, "samsung", resp.Insurers[0].Insurer)
	assert.Equal(t, "삼성생명", resp.Insurers[0].Label)
	assert.Equal(t, int64(2000), resp.Insurers[0].GrandTotal)
	require.Len(t, resp.Years, 1)
	assert.Equal(t, int64(2500), resp.Years[0].Subtotal)
}

func TestCreateQuote_ValidationError(t *testing.T) {
	router := setupRouter(t)

	req := sampleQuoteRequest()
	req.Years = []api.YearEventsDTO{{Year: 1, Events: []string{"침술"}}}

	rec := postJSON(t, router, "/api/quotes", req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[api.ErrorResponse](t, rec)
	assert.Equal(t, "unknown_event", resp.Code)
}

func TestCreateQuote_MalformedBody(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderProposal_ReturnsPlainText(t *testing.T) {
	router := setupRouter(t)

	rec := postJSON(t, router, "/api/proposal", sampleQuoteRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	body := rec.Body.String()
	assert.Contains(t, body, "맞춤형 암 치료 보장 제안서")
	assert.Contains(t, body, "홍길동 고객님")
	assert.Contains(t, body, "총 예상 보장금액: 2,500 만원")
}

// =============================================================================
// REFERENCE DATA ENDPOINTS
// =============================================================================

func TestListCatalogs_BuiltInOrder(t *testing.T) {
	router := setupRouter(t)

	rec := get(t, router, "/api/catalogs")
	require.Equal(t, http.StatusOK, rec.Code)

	catalogs := decode[[]api.CatalogDTO](t, rec)
	require.Len(t, catalogs, 2)
	assert.Equal(t, "samsung", catalogs[0].Insurer)
	assert.Equal(t, "kb", catalogs[1].Insurer)
	assert.NotEmpty(t, catalogs[0].Clauses)
}

func TestGetCatalog_UnknownInsurer(t *testing.T) {
	router := setupRouter(t)

	rec := get(t, router, "/api/catalogs/acme")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCatalog_KB(t *testing.T) {
	router := setupRouter(t)

	rec := get(t, router, "/api/catalogs/kb")
	require.Equal(t, http.StatusOK, rec.Code)

	catalog := decode[api.CatalogDTO](t, rec)
	assert.Equal(t, "KB손해보험", catalog.Label)

	names := make([]string, len(catalog.Clauses))
	for i, cl := range catalog.Clauses {
		names[i] = cl.Name
	}
	assert.Contains(t, names, "비급여 암 주요치료비II")
}

func TestListEvents_FullVocabulary(t *testing.T) {
	router := setupRouter(t)

	rec := get(t, router, "/api/events")
	require.Equal(t, http.StatusOK, rec.Code)

	events := decode[[]string](t, rec)
	assert.Len(t, events, 15)
	assert.Equal(t, "수술", events[0])
	assert.Contains(t, events, "로봇수술")
}

// =============================================================================
// SCENARIO ENDPOINTS
// =============================================================================

func TestListScenarios(t *testing.T) {
	router := setupRouter(t)

	rec := get(t, router, "/api/scenarios")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[[]api.ScenarioDTO](t, rec)
	require.NotEmpty(t, list)
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	assert.Contains(t, ids, "year-exclusive")
	assert.Contains(t, ids, "premium-compounding")
}

func TestRunScenario_YearExclusive(t *testing.T) {
	// The KB non-covered major clause is triggered twice in year 3 but is
	// year-exclusive, so the scenario pays 500, not 1000.

	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios/year-exclusive/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[api.QuoteResponseDTO](t, rec)
	assert.Equal(t, int64(500), resp.CombinedTotal)
}

func TestRunScenario_PremiumCompounding(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios/premium-compounding/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[api.QuoteResponseDTO](t, rec)
	assert.Equal(t, "legacy", resp.RuleGeneration)
	assert.Equal(t, int64(800), resp.CombinedTotal)
	require.Len(t, resp.Insurers, 2)
	require.Len(t, resp.Insurers[0].Years, 1)
	assert.Len(t, resp.Insurers[0].Years[0].Items, 4)
}

func TestRunScenario_Unknown(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/scenarios/nope/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
