package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"clinic-cms/internal/domains/auth"
	"clinic-cms/internal/shared/middleware"
	"clinic-cms/internal/shared/response"
)

// CookieOptions controls the session cookie.
type CookieOptions struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// AuthHandler serves login, session check and logout for the admin panel.
type AuthHandler struct {
	authn  auth.Authenticator
	cookie CookieOptions
}

func NewAuthHandler(authn auth.Authenticator, cookie CookieOptions) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "cms-auth"
	}
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = 7 * 24 * time.Hour
	}
	return &AuthHandler{authn: authn, cookie: cookie}
}

// Login handles POST /api/cms/auth
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authn.Login(req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setCookie(c, token, int(h.cookie.MaxAge.Seconds()))
	log.Info().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("ip", middleware.ClientIPFrom(c)).
		Msg("CMS admin logged in")

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Check handles GET /api/cms/auth
func (h *AuthHandler) Check(c *gin.Context) {
	authenticated := middleware.Authenticated(c, h.authn, h.cookie.Name)
	c.JSON(http.StatusOK, auth.StatusResponse{Authenticated: authenticated})
}

// Logout handles DELETE /api/cms/auth
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, value, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingPassword):
		response.BadRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Warn().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("ip", middleware.ClientIPFrom(c)).
			Msg("CMS login failed")
		response.Unauthorized(c, "Invalid password")
	default:
		log.Error().Err(err).Msg("CMS login error")
		response.InternalServerError(c, "Login failed")
	}
}
