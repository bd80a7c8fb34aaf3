// Package httperr defines the JSON error envelope the booking API
// responds with. Handlers mostly map sentinel errors to inline gin.H
// bodies; the envelope covers the paths that flow through the error
// middleware instead (panics, deferred gin.Errors).
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope: {"error":{"message":...},"detail":...}.
// Status travels out-of-band so the middleware can replay the envelope
// with the right code.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the gin context for the logging
// middleware and writes the envelope immediately.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
