package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-cms/internal/domains/booking"
	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/domains/content/service"
	"clinic-cms/internal/shared/response"
)

// PreviewHandler renders the contact section's notification templates for
// a sample booking. Nothing is sent.
type PreviewHandler struct {
	service service.ServiceInterface
	addrs   booking.Addresses
	now     func() time.Time
}

func NewPreviewHandler(service service.ServiceInterface, addrs booking.Addresses) *PreviewHandler {
	return &PreviewHandler{service: service, addrs: addrs, now: time.Now}
}

// Preview handles POST /api/cms/contact/preview
func (h *PreviewHandler) Preview(c *gin.Context) {
	var req model.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondReadError(c, err)
		return
	}

	preview := booking.Compose(doc.Contact, h.addrs, booking.FromRequest(req), h.now())
	response.Success(c, http.StatusOK, preview)
}
