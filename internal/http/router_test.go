package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	intconfig "travelrecords/internal/config"
	"travelrecords/internal/http/handlers"
	"travelrecords/internal/storage"
	"travelrecords/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

type testAPI struct {
	t     *testing.T
	r     *gin.Engine
	store *storage.Store
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	env := intconfig.Env{APIVersion: "v1"}
	clock := utils.FixedClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))
	hd := handlers.New(store, clock, env.APIVersion)
	return &testAPI{t: t, r: NewRouter(env, hd, prometheus.NewRegistry(), nil), store: store}
}

func (a *testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env.Error.Code
}

const (
	client101 = `{"id":101,"type":"business","name":"Ana Silva","address_line1":"1 Main St",
		"city":"Lisbon","state":"Lisboa","zip_code":"1000-001","country":"Portugal","phone_number":"+351 912 345 678"}`
	airline301 = `{"id":"301","type":"NATIONAL","company_name":"TAP"}`
	flight     = `{"client_id":101,"airline_id":301,"date":"2999-01-01","start_city":"Lisbon","end_city":"Oslo"}`
)

func TestHealth(t *testing.T) {
	a := newTestAPI(t)
	for _, path := range []string{"/health", "/api/v1/health"} {
		w := a.do(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","version":"v1"}`, w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
}

func TestDeleteGuardScenario(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(http.MethodPost, "/api/v1/clients", client101)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v1/clients/101", w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), `"type":"Business"`)
	assert.Contains(t, w.Body.String(), `"address_line2":null`)

	w = a.do(http.MethodPost, "/api/v1/airlines", airline301)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/v1/flights", flight)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v1/flights/101/301/2999-01-01", w.Header().Get("Location"))

	w = a.do(http.MethodGet, "/api/v1/flights", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data  []map[string]any `json:"data"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "2999-01-01", list.Data[0]["date"])

	w = a.do(http.MethodDelete, "/api/v1/clients/101", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "DELETE_BLOCKED", errorCode(t, w))

	w = a.do(http.MethodDelete, "/api/v1/flights/101/301/2999-01-01", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodDelete, "/api/v1/clients/101", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = a.do(http.MethodGet, "/api/v1/clients/101", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestCreateClient_MissingIDIsInvalidInput(t *testing.T) {
	a := newTestAPI(t)
	body := strings.Replace(client101, `"id":101,`, "", 1)

	w := a.do(http.MethodPost, "/api/v1/clients", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	assert.Equal(t, []any{"id"}, env.Error.Details["missing"])
}

func TestClientErrors(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/clients", client101).Code)

	cases := []struct {
		name, method, path, body string
		status                   int
		code                     string
	}{
		{"duplicate", http.MethodPost, "/api/v1/clients", client101, 409, "DUPLICATE_ID"},
		{"bad id type", http.MethodPost, "/api/v1/clients", strings.Replace(client101, `"id":101`, `"id":"abc"`, 1), 400, "INVALID_ID"},
		{"no body", http.MethodPost, "/api/v1/clients", "", 422, "INVALID_INPUT"},
		{"not an object", http.MethodPost, "/api/v1/clients", `[1,2]`, 422, "INVALID_INPUT"},
		{"malformed json", http.MethodPost, "/api/v1/clients", `{"id":`, 422, "INVALID_INPUT"},
		{"bad path id", http.MethodGet, "/api/v1/clients/abc", "", 400, "INVALID_ID"},
		{"id change", http.MethodPut, "/api/v1/clients/101", `{"id":102}`, 400, "ID_IMMUTABLE"},
		{"blank name", http.MethodPut, "/api/v1/clients/101", `{"name":"  "}`, 422, "INVALID_INPUT"},
		{"unknown", http.MethodPut, "/api/v1/clients/555", `{"name":"X"}`, 404, "NOT_FOUND"},
		{"bad sort", http.MethodGet, "/api/v1/clients?sort=zip", "", 422, "INVALID_INPUT"},
		{"bad limit", http.MethodGet, "/api/v1/clients?limit=x", "", 422, "INVALID_INPUT"},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", 404, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := a.do(tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Equal(t, tc.code, errorCode(t, w))
		})
	}
}

func TestUpdateClient_MatchingIDSucceeds(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/clients", client101).Code)

	w := a.do(http.MethodPut, "/api/v1/clients/101", `{"id":"101","city":"Porto","type":"vip"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"city":"Porto"`)
	assert.Contains(t, w.Body.String(), `"type":"VIP"`)
}

func TestListClients_Envelope(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/clients", client101).Code)

	w := a.do(http.MethodGet, "/api/v1/clients?q=ana&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Data   []map[string]any `json:"data"`
		Count  int              `json:"count"`
		Limit  int              `json:"limit"`
		Offset int              `json:"offset"`
		Sort   string           `json:"sort"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, "id", page.Sort)
	require.Len(t, page.Data, 1)

	w = a.do(http.MethodGet, "/api/v1/airlines", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[],"count":0,"limit":50,"offset":0,"sort":"id"}`, w.Body.String())
}

func TestFlightErrors(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/clients", client101).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/airlines", airline301).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/flights", flight).Code)

	cases := []struct {
		name, method, path, body string
		status                   int
		code                     string
	}{
		{"identity change", http.MethodPut, "/api/v1/flights/101/301/2999-01-01", `{"client_id":999}`, 400, "ID_IMMUTABLE"},
		{"duplicate", http.MethodPost, "/api/v1/flights", flight, 409, "DUPLICATE_ID"},
		{"unknown client", http.MethodPost, "/api/v1/flights", strings.Replace(flight, `"client_id":101`, `"client_id":999`, 1), 422, "INVALID_INPUT"},
		{"bad date", http.MethodPost, "/api/v1/flights", strings.Replace(flight, `2999-01-01`, `2999-13-01`, 1), 422, "INVALID_INPUT"},
		{"bad filter", http.MethodGet, "/api/v1/flights?client_id=abc", "", 400, "INVALID_ID"},
		{"bad path date", http.MethodGet, "/api/v1/flights/101/301/yesterday", "", 422, "INVALID_INPUT"},
		{"bad path id", http.MethodDelete, "/api/v1/flights/0/301/2999-01-01", "", 400, "INVALID_ID"},
		{"missing", http.MethodGet, "/api/v1/flights/101/301/2999-01-02", "", 404, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := a.do(tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Equal(t, tc.code, errorCode(t, w))
		})
	}

	w := a.do(http.MethodPut, "/api/v1/flights/101/301/2999-01-01", `{"client_id":"101","end_city":"Bergen"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"end_city":"Bergen"`)
}

func TestItinerary(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/clients", client101).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/airlines", airline301).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/flights", flight).Code)

	w := a.do(http.MethodGet, "/api/v1/clients/101/itinerary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	w = a.do(http.MethodGet, "/api/v1/clients/202/itinerary", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCorruptStoreIsInternalError(t *testing.T) {
	a := newTestAPI(t)
	require.NoError(t, os.WriteFile(filepath.Join(a.store.Dir(), "airlines.json"), []byte("{oops"), 0o644))

	w := a.do(http.MethodGet, "/api/v1/airlines", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, w))
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestAPI(t)
	a.do(http.MethodGet, "/health", "")

	w := a.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestFlightDate_FractionalSecondsRejected(t *testing.T) {
	a := newTestAPI(t)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/clients", client101).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/airlines", airline301).Code)

	timed := strings.Replace(flight, `"2999-01-01"`, `"2999-01-01T10:30:15Z"`, 1)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/v1/flights", timed).Code)

	w := a.do(http.MethodPost, "/api/v1/flights", strings.Replace(flight, `"2999-01-01"`, `"2999-01-01T10:30:15.456Z"`, 1))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Equal(t, "INVALID_INPUT", errorCode(t, w))

	w = a.do(http.MethodGet, "/api/v1/flights/101/301/2999-01-01T10:30:15.999Z", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	w = a.do(http.MethodGet, "/api/v1/flights/101/301/2999-01-01T10:30:15Z", "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestCreateClient_IntegralDecimalID(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(http.MethodPost, "/api/v1/clients", strings.Replace(client101, `"id":101`, `"id":101.0`, 1))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "/api/v1/clients/101", w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), `"id":101,`)

	w = a.do(http.MethodPost, "/api/v1/clients", strings.Replace(client101, `"id":101`, `"id":101.5`, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, w))
}
