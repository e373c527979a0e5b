package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the flat error body every endpoint emits: a human-readable
// error plus an optional machine-readable reason code.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, reason string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Reason: reason}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
