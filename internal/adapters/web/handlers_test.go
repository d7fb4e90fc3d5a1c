package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"billbook/internal/adapters/web"
	"billbook/internal/app"
	"billbook/internal/core"
	"billbook/internal/remote"
	"billbook/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *remote.Memory) {
	t.Helper()
	rem := remote.NewMemory()
	services := app.NewServices(store.NewMemory(), rem, rem)
	return web.NewHandler(app.NewAppService(services), ""), rem
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := doJSON(t, h, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestCompanyLifecycleOverHTTP(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/companies",
		`{"name": "Muscat Traders", "phone": "+968 9123 4567"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created core.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.DocID)

	rec = doJSON(t, h, http.MethodGet, "/api/companies/"+created.DocID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/companies/"+created.DocID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/companies/"+created.DocID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationErrorsMapTo400(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/companies", `{"phone": "no name"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION", resp["code"])

	rec = doJSON(t, h, http.MethodPost, "/api/companies", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfflineMapsTo503(t *testing.T) {
	h, rem := newTestHandler(t)
	rem.SetOnline(false)

	rec := doJSON(t, h, http.MethodPost, "/api/sync/pull/companies", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "OFFLINE", resp["code"])

	rec = doJSON(t, h, http.MethodPost, "/api/prices", `{"itemName": "Widget", "price": "2.500"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReceiptOverpaymentMapsTo400(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/companies", `{"name": "Muscat Traders"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var c core.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))

	rec = doJSON(t, h, http.MethodPost, "/api/receipts",
		`{"companyDocId": "`+c.DocID+`", "amount": "10.000", "date": "2026-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatementRequiresRange(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doJSON(t, h, http.MethodPost, "/api/companies", `{"name": "Muscat Traders"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var c core.Company
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))

	rec = doJSON(t, h, http.MethodGet, "/api/companies/"+c.DocID+"/statement", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet,
		"/api/companies/"+c.DocID+"/statement?from=2026-01-01&to=2026-01-31", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var st core.Statement
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, c.DocID, st.CompanyDocID)
}
