package inspector_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-divendor/framework/container"
	"github.com/km-arc/go-divendor/framework/inspector"
	"github.com/km-arc/go-divendor/framework/metrics"
)

type Store interface{ Get(string) string }

type memStore struct{ _ byte }

func newMemStore() *memStore          { return &memStore{} }
func (*memStore) Get(k string) string { return k }

func setup(t *testing.T, gather bool) (*httptest.Server, *container.Registry) {
	t.Helper()
	log, _ := test.NewNullLogger()

	m := metrics.New("inspect")
	r := container.New(container.WithLogger(log), container.WithObserver(m))
	require.NoError(t, container.Register[Store](r, newMemStore))

	opts := inspector.Options{Log: log}
	if gather {
		reg := prometheus.NewRegistry()
		require.NoError(t, reg.Register(m))
		opts.Gatherer = reg
	}
	srv := httptest.NewServer(inspector.New(r, opts))
	t.Cleanup(srv.Close)
	return srv, r
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestInspector_Healthz(t *testing.T) {
	srv, _ := setup(t, false)
	var body struct {
		Data map[string]string `json:"data"`
	}
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/healthz", &body))
	assert.Equal(t, "ok", body.Data["status"])
}

func TestInspector_ListRegistrations(t *testing.T) {
	srv, _ := setup(t, false)
	var body struct {
		Data []container.RegistrationInfo `json:"data"`
	}
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/registrations/", &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "inspector_test.Store", body.Data[0].Contract)
	assert.Equal(t, "*inspector_test.memStore", body.Data[0].Implementation)
	assert.True(t, body.Data[0].Resolved)
}

func TestInspector_GetRegistration(t *testing.T) {
	srv, _ := setup(t, false)

	var found struct {
		Data map[string]any `json:"data"`
	}
	path := srv.URL + "/registrations/" + url.PathEscape("inspector_test.Store")
	require.Equal(t, http.StatusOK, getJSON(t, path, &found))
	assert.Equal(t, "singleton", found.Data["lifetime"])

	var missing struct {
		Message string `json:"message"`
	}
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/registrations/nope", &missing))
	assert.Contains(t, missing.Message, "nope")
}

func TestInspector_Metrics(t *testing.T) {
	srv, r := setup(t, true)
	container.MustProcure[Store](r)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var sb strings.Builder
	_, err = io.Copy(&sb, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), `inspect_procurements_total{contract="inspector_test.Store",outcome="ok"} 1`)
}

func TestInspector_NoMetricsWithoutGatherer(t *testing.T) {
	srv, _ := setup(t, false)
	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
