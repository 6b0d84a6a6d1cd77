package v1

import (
	"strconv"

	"futuro-do-trabalho-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const msgInvalidBody = "Corpo da requisição inválido."

// parseID reads a numeric id from the given path parameter.
func parseID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("ID inválido.")
	}
	return id, nil
}
