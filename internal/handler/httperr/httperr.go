// Package httperr defines the JSON error envelope every failing endpoint
// returns.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of an error. Status travels on the HTTP line,
// not in the body. Detail is for field-level validation payloads and is
// omitted when nil.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the envelope and records the underlying error on the
// gin context so the logging middleware can see the real cause. msg is what
// the client reads; err stays server-side. A nil err is a programming error.
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
