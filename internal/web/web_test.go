package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-cms/internal/domains/content/model"
)

type stubReader struct {
	doc *model.Document
	err error
}

func (s stubReader) Get(context.Context) (*model.Document, error) { return s.doc, s.err }

func newRouter(t *testing.T, reader DocumentReader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := Templates()
	require.NoError(t, err)

	h := NewHandler(reader)
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", h.Home)
	r.GET("/services/:id", h.Service)
	r.NoRoute(h.NotFound)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHome_RendersDocument(t *testing.T) {
	doc := model.DefaultDocument()
	doc.Hero.Title = "Edited Title"
	w := get(newRouter(t, stubReader{doc: doc}), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Edited Title")
	assert.Contains(t, w.Body.String(), `href="/services/hijama"`)
}

func TestHome_FallsBackToDefaults(t *testing.T) {
	w := get(newRouter(t, stubReader{err: errors.New("down")}), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.DefaultDocument().Hero.Subtitle)
}

func TestHome_InlinedImageSurvivesEscaping(t *testing.T) {
	doc := model.DefaultDocument()
	doc.Hero.BackgroundImage = "data:image/png;base64,YWJj"
	w := get(newRouter(t, stubReader{doc: doc}), "/")

	assert.Contains(t, w.Body.String(), `src="data:image/png;base64,YWJj"`)
}

func TestService_Found(t *testing.T) {
	w := get(newRouter(t, stubReader{doc: model.DefaultDocument()}), "/services/skin-care")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Professional Skin Care")
	assert.Contains(t, w.Body.String(), "Deep Cleansing")
}

func TestService_UnknownID(t *testing.T) {
	w := get(newRouter(t, stubReader{doc: model.DefaultDocument()}), "/services/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func TestNoRoute(t *testing.T) {
	w := get(newRouter(t, stubReader{doc: model.DefaultDocument()}), "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
