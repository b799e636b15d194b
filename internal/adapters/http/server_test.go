package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quernlab/quern"
	httpadapter "github.com/quernlab/quern/internal/adapters/http"
	"github.com/quernlab/quern/internal/logging"
	"github.com/quernlab/quern/internal/metrics"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	reg := prometheus.NewRegistry()
	eng := quern.New(quern.WithMetrics(metrics.New(reg)))
	srv := httptest.NewServer(httpadapter.NewHandler(eng, logging.NewNop(), reg))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRunEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"recipe":{"ops":[{"op":"Fork","args":[",",";",false]},{"op":"To Upper Case"},{"op":"Merge"}]},"input":"a,b,c"}`
	resp, err := http.Post(srv.URL+"/v1/run", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Output string `json:"output"`
		RunID  string `json:"run_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "A;B;C;", out.Output)
	assert.NotEmpty(t, out.RunID)
}

func TestRunEndpointRejectsBadBodies(t *testing.T) {
	srv := newTestServer(t)

	t.Run("invalid json", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/v1/run", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown operation", func(t *testing.T) {
		body := `{"recipe":{"ops":[{"op":"Nope"}]},"input":"x"}`
		resp, err := http.Post(srv.URL+"/v1/run", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"ops":[{"op":"Jump","args":["nowhere",3]}]}`
	resp, err := http.Post(srv.URL+"/v1/validate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Valid       bool     `json:"valid"`
		Diagnostics []string `json:"diagnostics"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Valid)
	assert.NotEmpty(t, out.Diagnostics)
}

func TestOperationsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/operations")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["operations"], "To Upper Case")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
