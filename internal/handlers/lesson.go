package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/http/response"
	"github.com/sankofalabs/sankofa-backend/internal/services"
)

type LessonHandler struct {
	lessonService services.LessonService
}

func NewLessonHandler(lessonService services.LessonService) *LessonHandler {
	return &LessonHandler{lessonService: lessonService}
}

type generateLessonRequest struct {
	Context   string `json:"context" binding:"required"`
	Language  string `json:"language" binding:"required"`
	UserLevel string `json:"userLevel"`
	UserGoal  string `json:"userGoal"`
	Title     string `json:"title"`
}

func (lh *LessonHandler) Generate(c *gin.Context) {
	var req generateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	lesson := lh.lessonService.Compose(c.Request.Context(),
		req.Context, req.Language, req.UserLevel, req.UserGoal, req.Title)
	response.RespondOK(c, lesson)
}
