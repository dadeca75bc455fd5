package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-cms/internal/config"
	"clinic-cms/internal/domains/content/model"
	"clinic-cms/pkg/container"
)

func newTestRouter(t *testing.T) (*gin.Engine, *container.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App:     config.AppConfig{Environment: "test", Version: "test"},
		Storage: config.StorageConfig{DataFile: filepath.Join(t.TempDir(), "cms-data.json")},
		Cache:   config.CacheConfig{Driver: "memory", TTL: time.Minute},
		Auth: config.AuthConfig{
			Password:     "secret",
			Token:        "tok",
			Mode:         "static",
			CookieName:   "cms-auth",
			CookieMaxAge: 7 * 24 * time.Hour,
		},
	}

	c, err := container.Build(cfg)
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)

	router, err := SetupRouter(c)
	require.NoError(t, err)
	return router, c
}

func TestRouter_EditFlow(t *testing.T) {
	router, c := newTestRouter(t)
	require.NoError(t, c.ContentService.Save(t.Context(), model.DefaultDocument()))

	// login
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cms/auth", strings.NewReader(`{"password":"secret"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "cms-auth" {
			session = ck
		}
	}
	require.NotNil(t, session)

	// update
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cms", strings.NewReader(`{"section":"hero","data":{"title":"From the API"}}`))
	req.AddCookie(session)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// read back through the cache
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cms?section=hero", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]model.Hero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, model.Hero{Title: "From the API"}, body["hero"])

	// public page reflects it
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "From the API")
}

func TestRouter_UnauthenticatedWriteLeavesStoreUntouched(t *testing.T) {
	router, c := newTestRouter(t)
	require.NoError(t, c.ContentService.Save(t.Context(), model.DefaultDocument()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/cms", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	doc, err := c.ContentService.Get(t.Context())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDocument().Hero, doc.Hero)
}

func TestRouter_MissingDataFile(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cms", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "cmsctl seed")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// pages still render from defaults
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services/hijama", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Health(t *testing.T) {
	router, c := newTestRouter(t)
	require.NoError(t, c.ContentService.Save(t.Context(), model.DefaultDocument()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "file+cache", body["storage"])
}

func TestRouter_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cms/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["error"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}
