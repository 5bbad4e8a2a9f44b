package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/http/response"
	"github.com/sankofalabs/sankofa-backend/internal/services"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

type GoalHandler struct {
	goalService services.GoalService
}

func NewGoalHandler(goalService services.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (gh *GoalHandler) Refine(c *gin.Context) {
	var profile types.LearnerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	detailedGoal := gh.goalService.Refine(c.Request.Context(), profile)
	response.RespondOK(c, gin.H{"detailedGoal": detailedGoal})
}
