package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Default messages
const (
	MessageTooManyRequests = "Too many requests"
	MessageNotFound        = "Not Found"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message sends 200 {"message": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResp{Message: msg})
}

// Error sends {"detail": err} with the given status code.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResp{Detail: err.Error()})
}

// ValidationError sends 422 for a request body that does not match the schema.
func ValidationError(c *gin.Context, err error) {
	Error(c, http.StatusUnprocessableEntity, err)
}

// InternalError sends 500 with the error text as detail.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err)
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Detail: MessageTooManyRequests})
}

// NotFound sends 404.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResp{Detail: MessageNotFound})
}
