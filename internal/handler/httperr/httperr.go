package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the failure half of the API envelope.
type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func New(status int, msg string, errors any) Response {
	return Response{Status: status, Success: false, Message: msg, Errors: errors}
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, errors any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(status, msg, errors)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
