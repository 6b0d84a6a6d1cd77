package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Mensagem string `json:"mensagem"`
}

// Error sends an error response. Success responses are the bare entity JSON,
// so only errors go through here.
func Error(c *gin.Context, code int, mensagem string) {
	c.JSON(code, ErrorBody{Mensagem: mensagem})
}
