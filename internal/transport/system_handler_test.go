package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSystemRouter() chi.Router {
	r := chi.NewRouter()
	// Store not configured
	NewSystemHandler(nil, nil, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestRootLiveness(t *testing.T) {
	router := newSystemRouter()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MK Store API is running", body["message"])
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	router := newSystemRouter()

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "running", resp.Backend)
	assert.Equal(t, "not available", resp.Database)
	assert.Equal(t, "not connected", resp.ConnectionStatus)
	assert.Empty(t, resp.Collections)
}
