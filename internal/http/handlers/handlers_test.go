package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/godswill-dev/guardian-be/internal/auth"
	"github.com/godswill-dev/guardian-be/internal/metrics"
	"github.com/godswill-dev/guardian-be/internal/stats"
	"github.com/godswill-dev/guardian-be/internal/storage/memory"
)

// envelope mirrors respond.Envelope with raw data for per-test decoding.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	mux      *http.ServeMux
	store    *memory.Store
	registry *stats.Registry
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewStore()
	registry := stats.NewRegistry()
	collector := metrics.NewCollector(prometheus.NewRegistry())
	tokens := auth.NewTokenManager("test-secret", "guardian-test", time.Hour)

	mux := http.NewServeMux()
	NewAccountHandler(store, registry, collector, log, 0).Register(mux)
	NewUserHandler(store, tokens, registry, collector, log).Register(mux)
	NewStatsHandler(registry).Register(mux)
	NewHealthHandler(time.Now()).Register(mux)

	return &testEnv{mux: mux, store: store, registry: registry}
}

// do performs a request against the mux and decodes the envelope.
func (e *testEnv) do(t *testing.T, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	e.mux.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return rr.Code, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}
