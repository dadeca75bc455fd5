package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/domains/content/service"
	"clinic-cms/internal/shared/response"
)

// ContentHandler exposes the content document over HTTP.
type ContentHandler struct {
	service     service.ServiceInterface
	linkEditing bool
}

func NewContentHandler(service service.ServiceInterface, linkEditing bool) *ContentHandler {
	return &ContentHandler{service: service, linkEditing: linkEditing}
}

// ========================================
// READ
// ========================================

// Get handles GET /api/cms[?section=NAME]
// Returns the document itself, or {NAME: value} where value is null for an
// unknown section.
func (h *ContentHandler) Get(c *gin.Context) {
	section := c.Query("section")

	if section == "" {
		doc, err := h.service.Get(c.Request.Context())
		if err != nil {
			respondReadError(c, err)
			return
		}
		response.Raw(c, http.StatusOK, doc)
		return
	}

	value, err := h.service.GetSection(c.Request.Context(), section)
	if err != nil {
		respondReadError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{section: value})
}

// Settings handles GET /api/cms/settings
func (h *ContentHandler) Settings(c *gin.Context) {
	response.Raw(c, http.StatusOK, model.SettingsResponse{LinkEditing: h.linkEditing})
}

// ========================================
// WRITE
// ========================================

// Update handles POST /api/cms
func (h *ContentHandler) Update(c *gin.Context) {
	var req model.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Section and data are required")
		return
	}

	doc, err := h.service.Update(c.Request.Context(), req.Section, req.Data)
	if err != nil {
		respondWriteError(c, err)
		return
	}

	value, _ := doc.Section(model.SectionName(req.Section))
	response.SuccessWithMessage(c, http.StatusOK, req.Section+" updated successfully", value)
}

// Replace handles PUT /api/cms with the entire document as body.
func (h *ContentHandler) Replace(c *gin.Context) {
	var doc model.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.BadRequest(c, "Request body must be the full CMS document")
		return
	}

	if err := h.service.Save(c.Request.Context(), &doc); err != nil {
		respondWriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Response{
		Success: true,
		Message: "CMS data updated successfully",
	})
}
