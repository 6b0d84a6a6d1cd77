package v1

import (
	"net/http"

	"futuro-do-trabalho-api/internal/domain"
	"futuro-do-trabalho-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(rg *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := rg.Group("/candidatos")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.Get)
		candidates.GET("/vaga/:vagaId", handler.ListForJob)
		candidates.POST("", handler.Create)
		candidates.PUT("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// List returns every candidate with its job attached.
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	candidate, err := h.candidateUC.GetCandidate(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// ListForJob returns the candidates of one job, 404 when the job is absent.
func (h *CandidateHandler) ListForJob(c *gin.Context) {
	jobID, err := parseID(c, "vagaId")
	if err != nil {
		c.Error(err)
		return
	}

	candidates, err := h.candidateUC.ListCandidatesForJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

func (h *CandidateHandler) Create(c *gin.Context) {
	var input domain.CreateCandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var input domain.UpdateCandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(msgInvalidBody))
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c.Request.Context(), id, input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.DeleteCandidate(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
