package middleware

import (
	"errors"
	"net/http"

	"futuro-do-trabalho-api/internal/delivery/http/response"
	"futuro-do-trabalho-api/pkg/apperror"
	"futuro-do-trabalho-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors pushed with c.Error into the JSON error
// body. Unknown errors are logged server-side and masked as a 500 so internal
// details never reach clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		logger.Log.Error("Internal server error",
			"error", err,
			"path", c.Request.URL.Path,
			"request_id", c.GetString("RequestID"),
		)
		response.Error(c, http.StatusInternalServerError, "Ocorreu um erro inesperado. Tente novamente mais tarde.")
	}
}
