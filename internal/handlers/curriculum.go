package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/http/response"
	"github.com/sankofalabs/sankofa-backend/internal/services"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

type CurriculumHandler struct {
	curriculumService services.CurriculumService
}

func NewCurriculumHandler(curriculumService services.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumService: curriculumService}
}

type generateCurriculumRequest struct {
	UserProfile  types.LearnerProfile `json:"userProfile" binding:"required"`
	DetailedGoal string               `json:"detailedGoal"`
}

func (ch *CurriculumHandler) Generate(c *gin.Context) {
	var req generateCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	topics := ch.curriculumService.Plan(c.Request.Context(), req.UserProfile, req.DetailedGoal)
	response.RespondOK(c, topics)
}
