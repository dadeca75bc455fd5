package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/content/model"
	"clinic-cms/internal/shared/middleware"
	"clinic-cms/internal/shared/response"
)

const (
	genericWriteFailure = "Failed to update CMS data"
	genericReadFailure  = "Failed to fetch CMS data"
	defaultReadNote     = "Make sure the data file exists (run `cmsctl seed`) or configure REMOTE_STORE_URL and REMOTE_STORE_KEY."
)

// StatusFor maps a taxonomy code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case model.CodeValidation:
		return http.StatusBadRequest
	case model.CodeUnauthenticated:
		return http.StatusUnauthorized
	case model.CodeReadOnly:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondWriteError translates a failed update or replace. Only READ_ONLY
// carries a code and suggestion the admin UI branches on.
func respondWriteError(c *gin.Context, err error) {
	var ce *model.ContentError
	if !errors.As(err, &ce) {
		ce = model.NewUnknownIOError(genericWriteFailure, err)
	}

	logWriteError(c, ce)

	switch ce.Code {
	case model.CodeValidation:
		response.ErrorWithCode(c, http.StatusBadRequest, ce.Code, ce.Message, "")
	case model.CodeReadOnly:
		response.ErrorWithCode(c, http.StatusServiceUnavailable, ce.Code, ce.Message, ce.Suggestion)
	case model.CodeNotConfigured, model.CodeNotFound:
		response.ErrorWithNote(c, http.StatusInternalServerError, ce.Code, ce.Message, "", ce.Suggestion)
	default:
		response.InternalServerError(c, genericWriteFailure)
	}
}

// respondReadError always answers 500 with a hint on how to initialise storage.
func respondReadError(c *gin.Context, err error) {
	var ce *model.ContentError
	if !errors.As(err, &ce) {
		ce = model.NewUnknownIOError(genericReadFailure, err)
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("code", ce.Code).
		Msg("Error fetching CMS data")

	note := ce.Suggestion
	if note == "" {
		note = defaultReadNote
	}
	response.ErrorWithNote(c, http.StatusInternalServerError, ce.Code, genericReadFailure, ce.Message, note)
}

func logWriteError(c *gin.Context, ce *model.ContentError) {
	event := log.Error()
	if ce.Code == model.CodeValidation {
		event = log.Warn()
	}
	event.
		Err(ce).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("code", ce.Code).
		Msg("Error updating CMS data")
}
