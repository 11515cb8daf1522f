package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := fmt.Sprintf("port: 2333\ndata_dir: %q\n", filepath.Join(dir, "data"))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	a, err := New(zap.NewNop(), path)
	require.NoError(t, err)
	t.Cleanup(a.Shutdown)
	return a
}

func TestAppServesRootInfo(t *testing.T) {
	a := newTestApp(t)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "gigspace-core")
}

func TestAppUnknownRoute(t *testing.T) {
	a := newTestApp(t)
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)
}

func TestAppPublicSiteEndpoints(t *testing.T) {
	a := newTestApp(t)

	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/site/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/projects", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nova Fintech App")
}

func TestAppRecoveryLoginFlow(t *testing.T) {
	a := newTestApp(t)

	body := `{"email":"admin@gigspace.com","access_code":"admin123"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)
}

func TestAppAddr(t *testing.T) {
	a := newTestApp(t)
	assert.Equal(t, ":2333", a.Addr())
}
