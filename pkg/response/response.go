package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the payload as-is. This API returns bare resource
// bodies on success, not an envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: err.Error()})
}

// Error sends the given status with the error message.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, ErrResp{Error: err.Error()})
}

// InternalError sends 500 with a generic message. The underlying error is
// expected to be logged at the call site, never exposed.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: DefaultErrorMessage})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Error: "rate limit exceeded"})
}
