package routing_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-divendor/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func newRouter() (*routing.Router, *test.Hook) {
	log, hook := test.NewNullLogger()
	return routing.New(log), hook
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── Routes ───────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r, _ := newRouter()
	r.Get("/hello", okHandler)

	rr := do(t, r, http.MethodGet, "/hello")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, r, http.MethodPost, "/hello")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouter_Handle(t *testing.T) {
	r, _ := newRouter()
	r.Handle("/any", http.HandlerFunc(okHandler))

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/any").Code)
}

func TestRouter_Prefix(t *testing.T) {
	r, _ := newRouter()
	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/items/{name}", func(w http.ResponseWriter, req *http.Request) {
			_, _ = io.WriteString(w, routing.Param(req, "name"))
		})
	})

	rr := do(t, r, http.MethodGet, "/api/items/widget")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "widget", rr.Body.String())
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/items/widget").Code)
}

func TestRouter_Middleware(t *testing.T) {
	r, _ := newRouter()
	r.Middleware(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Seen", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/", okHandler)

	assert.Equal(t, "yes", do(t, r, http.MethodGet, "/").Header().Get("X-Seen"))
}

// ── Logging & recovery ───────────────────────────────────────────────────────

func TestRouter_LogsRequests(t *testing.T) {
	r, hook := newRouter()
	r.Get("/hello", okHandler)
	do(t, r, http.MethodGet, "/hello")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "/hello", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestRouter_RecoversPanics(t *testing.T) {
	r, hook := newRouter()
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rr := do(t, r, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var sawPanic bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			sawPanic = true
		}
	}
	assert.True(t, sawPanic)
}
