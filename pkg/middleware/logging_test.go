package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/roi-benchmark-api/pkg/apiErrors"
)

const competitorsRoute = "/v1/businesses/:id/competitors"

func newTestHandler(handler http.HandlerFunc) http.Handler {
	hr := httprouter.New()
	hr.Handler(http.MethodGet, competitorsRoute, RecordRoute(competitorsRoute)(handler))

	return LoggingMiddleware()(LogPanicMiddleware()(hr))
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLoggingMiddleware_LogsRouteAndBenchmarkFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()

	handler := newTestHandler(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/businesses/b1/competitors?radius=5&limit=3&business_type=Retail&ignored=x", nil)
	rec := serve(handler, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(CorrelationIDHeader))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, competitorsRoute, entry.Data["route"])
	assert.Equal(t, "b1", entry.Data["business_id"])
	assert.Equal(t, "5", entry.Data["radius"])
	assert.Equal(t, "3", entry.Data["limit"])
	assert.Equal(t, "Retail", entry.Data["business_type"])
	assert.Equal(t, http.StatusOK, entry.Data["status_code"])
	assert.Equal(t, rec.Header().Get(CorrelationIDHeader), entry.Data["correlation_id"])
	assert.NotContains(t, entry.Data, "ad_method_id")
	assert.NotContains(t, entry.Data, "ignored")
	assert.NotContains(t, entry.Data, "path")
}

func TestLoggingMiddleware_KeepsIncomingCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()

	handler := newTestHandler(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/v1/businesses/b1/competitors", nil)
	req.Header.Set(CorrelationIDHeader, "req-123")
	rec := serve(handler, req)

	assert.Equal(t, "req-123", rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, "req-123", hook.LastEntry().Data["correlation_id"])
}

func TestLoggingMiddleware_UnmatchedRoute(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()

	handler := newTestHandler(func(w http.ResponseWriter, r *http.Request) {})

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, unmatchedRoute, entry.Data["route"])
	assert.Equal(t, "/v1/unknown", entry.Data["path"])
}

func TestLogPanicMiddleware_RespondsInternalError(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()

	handler := newTestHandler(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/v1/businesses/b1/competitors", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "boom", entries[0].Data["error"])
	assert.NotEmpty(t, entries[0].Data["stack_trace"])
	assert.Equal(t, entries[0].Data["correlation_id"], entries[1].Data["correlation_id"])
	assert.Equal(t, logrus.ErrorLevel, entries[1].Level)
	assert.Equal(t, http.StatusInternalServerError, entries[1].Data["status_code"])
}

func TestLoggingMiddleware_DevelopmentKeepsBenchmarkFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := test.NewGlobal()

	handler := newTestHandler(func(w http.ResponseWriter, r *http.Request) {})

	serve(handler, httptest.NewRequest(http.MethodGet, "/v1/businesses/b1/competitors?ad_method_id=SOCIAL&radius=2", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, competitorsRoute, entry.Data["route"])
	assert.Equal(t, "SOCIAL", entry.Data["ad_method_id"])
	assert.Equal(t, "2", entry.Data["radius"])
	assert.Equal(t, "b1", entry.Data["business_id"])
}
