// Package web renders the public clinic pages from the content document.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for gin's SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.New("pages").
		Funcs(template.FuncMap{"imageURL": imageURL}).
		ParseFS(templateFS, "templates/*.html")
}

// imageURL lets inlined image data URIs through the template's URL filter.
// Anything else goes through normal escaping.
func imageURL(src string) interface{} {
	if strings.HasPrefix(src, "data:image/") {
		return template.URL(src)
	}
	return src
}

// DocumentReader is the read side of the content service.
type DocumentReader interface {
	Get(ctx context.Context) (*model.Document, error)
}

type pageData struct {
	Title string
	Doc   *model.Document
	Item  *model.ServiceItem
}

// Handler serves the public pages. A document that cannot be read is
// replaced by the seed content so the site keeps rendering.
type Handler struct {
	content DocumentReader
}

func NewHandler(content DocumentReader) *Handler {
	return &Handler{content: content}
}

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	doc := h.document(c)
	c.HTML(http.StatusOK, "home.html", pageData{Title: doc.Header.BrandName, Doc: doc})
}

// Service handles GET /services/:id
func (h *Handler) Service(c *gin.Context) {
	doc := h.document(c)

	item, ok := doc.Services.FindItem(c.Param("id"))
	if !ok {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "service.html", pageData{
		Title: item.Title + " | " + doc.Header.BrandName,
		Doc:   doc,
		Item:  &item,
	})
}

// NotFound renders the 404 page; also installed as the router's NoRoute.
func (h *Handler) NotFound(c *gin.Context) {
	doc := h.document(c)
	c.HTML(http.StatusNotFound, "404.html", pageData{Title: "Not Found", Doc: doc})
}

func (h *Handler) document(c *gin.Context) *model.Document {
	doc, err := h.content.Get(c.Request.Context())
	if err != nil {
		log.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Rendering default content")
		return model.DefaultDocument()
	}
	return doc
}
