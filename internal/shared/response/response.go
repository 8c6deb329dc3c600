package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API answer. Only the fields relevant to
// a route are set; the rest are omitted.
type Response struct {
	Success       bool        `json:"success"`
	Message       string      `json:"message,omitempty"`
	Count         *int        `json:"count,omitempty"`
	Data          interface{} `json:"data,omitempty"`
	ModifiedCount *int64      `json:"modifiedCount,omitempty"`
	DeletedCount  *int64      `json:"deletedCount,omitempty"`
	Error         string      `json:"error,omitempty"`
	Details       string      `json:"details,omitempty"`
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

// List answers a collection together with its size.
func List(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

func Modified(c *gin.Context, message string, modifiedCount int64) {
	c.JSON(http.StatusOK, Response{
		Success:       true,
		Message:       message,
		ModifiedCount: &modifiedCount,
	})
}

func Deleted(c *gin.Context, message string, deletedCount int64) {
	c.JSON(http.StatusOK, Response{
		Success:      true,
		Message:      message,
		DeletedCount: &deletedCount,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
	})
}

// ErrorWithDetails attaches the underlying cause. Only used for internal
// failures, never for client validation errors.
func ErrorWithDetails(c *gin.Context, statusCode int, message, details string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, message)
}
