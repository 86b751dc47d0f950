package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addrs struct{}

func (addrs) AdminAddr() string { return "127.0.0.1:0" }
func (addrs) GRPCAddr() string  { return "127.0.0.1:0" }

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func Test_OnHealthyChecks_ShouldReportOK(t *testing.T) {
	s := New(addrs{}, map[string]Check{
		"postgres": func(context.Context) error { return nil },
	})

	rec := get(t, s.Router(), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Empty(t, resp.Failed)
}

func Test_OnFailingCheck_ShouldReportUnavailable(t *testing.T) {
	s := New(addrs{}, map[string]Check{
		"postgres":  func(context.Context) error { return nil },
		"memcached": func(context.Context) error { return errors.New("connection refused") },
	})

	rec := get(t, s.Router(), "/healthz")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, map[string]string{"memcached": "connection refused"}, resp.Failed)
}

func Test_OnMetrics_ShouldServePrometheusFormat(t *testing.T) {
	s := New(addrs{}, nil)

	rec := get(t, s.Router(), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func Test_OnRun_ShouldStopWithContext(t *testing.T) {
	s := New(addrs{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- s.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
