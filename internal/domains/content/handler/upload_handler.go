package handler

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/shared/middleware"
	"clinic-cms/internal/shared/response"
)

const (
	// MaxUploadSize keeps inlined images small enough for the JSON document.
	MaxUploadSize int64 = 2 << 20

	uploadField = "file"

	// multipartOverhead covers boundaries and part headers around the file.
	multipartOverhead int64 = 1 << 20

	fileTooLargeMessage = "File size too large. Maximum size is 2MB for optimal performance."
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// Encoder turns uploaded bytes into the string stored in the document.
type Encoder func(mimeType string, data []byte) string

// DataURI encodes data as data:<mime>;base64,<payload>.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// UploadHandler converts an uploaded image into a data URI. Nothing is
// stored; the editor places the returned URL into a section field.
type UploadHandler struct {
	maxSize int64
	encode  Encoder
}

func NewUploadHandler(maxSize int64, encode Encoder) *UploadHandler {
	if maxSize <= 0 {
		maxSize = MaxUploadSize
	}
	if encode == nil {
		encode = DataURI
	}
	return &UploadHandler{maxSize: maxSize, encode: encode}
}

// Upload handles POST /api/cms/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	bodyLimit := h.maxSize + multipartOverhead
	if c.Request.ContentLength > bodyLimit {
		response.BadRequest(c, fileTooLargeMessage)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)

	header, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.BadRequest(c, fileTooLargeMessage)
			return
		}
		response.BadRequest(c, "No file provided")
		return
	}

	mimeType, err := detectType(header)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to inspect upload")
		response.InternalServerError(c, "Failed to upload file. Please try again.")
		return
	}

	if !allowedImageTypes[mimeType] {
		response.BadRequest(c, "Invalid file type. Only images are allowed.")
		return
	}

	if header.Size > h.maxSize {
		response.BadRequest(c, fileTooLargeMessage)
		return
	}

	data, err := readLimited(header, h.maxSize)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read upload")
		response.InternalServerError(c, "Failed to upload file. Please try again.")
		return
	}
	if int64(len(data)) > h.maxSize {
		response.BadRequest(c, fileTooLargeMessage)
		return
	}

	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("filename", header.Filename).
		Str("mime", mimeType).
		Int("bytes", len(data)).
		Msg("Image inlined")

	response.Raw(c, http.StatusOK, model.UploadResponse{
		Success:  true,
		URL:      h.encode(mimeType, data),
		Filename: header.Filename,
	})
}

// detectType trusts the part's declared type and only sniffs the content
// when the client sent none or a generic octet-stream.
func detectType(header *multipart.FileHeader) (string, error) {
	declared := normalizeType(header.Header.Get("Content-Type"))
	if declared != "" && declared != "application/octet-stream" {
		return declared, nil
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	return normalizeType(mt.String()), nil
}

func normalizeType(value string) string {
	if i := strings.Index(value, ";"); i >= 0 {
		value = value[:i]
	}
	return strings.ToLower(strings.TrimSpace(value))
}

func readLimited(header *multipart.FileHeader, max int64) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(io.LimitReader(f, max+1))
}
