package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope for writes and failures. Reads return the
// content itself so public pages and the client hook can consume it as is.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Code       string      `json:"code,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    string      `json:"details,omitempty"`
	Note       string      `json:"note,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

func SuccessWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Raw writes payload without the envelope.
func Raw(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
	})
}

// ErrorWithCode carries the machine-readable code the admin UI branches on.
func ErrorWithCode(c *gin.Context, statusCode int, code, message, suggestion string) {
	c.JSON(statusCode, Response{
		Success:    false,
		Error:      message,
		Code:       code,
		Suggestion: suggestion,
	})
}

// ErrorWithNote adds the failure detail and an operator hint.
func ErrorWithNote(c *gin.Context, statusCode int, code, message, details, note string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
		Code:    code,
		Details: details,
		Note:    note,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, 400, "VALIDATION", message, "")
}

func Unauthorized(c *gin.Context, message string) {
	ErrorWithCode(c, 401, "UNAUTHENTICATED", message, "")
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, message)
}
