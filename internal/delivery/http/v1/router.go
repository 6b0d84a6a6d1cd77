package v1

import (
	"net/http"

	"futuro-do-trabalho-api/internal/delivery/http/middleware"
	"futuro-do-trabalho-api/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	UserUC      domain.UserUsecase
	JobUC       domain.JobUsecase
	CandidateUC domain.CandidateUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api/v1")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	NewUserHandler(api, deps.UserUC)
	NewJobHandler(api, deps.JobUC)
	NewCandidateHandler(api, deps.CandidateUC)

	return r
}
