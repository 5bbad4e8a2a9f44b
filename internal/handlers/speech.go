package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/http/response"
	"github.com/sankofalabs/sankofa-backend/internal/services"
)

type SpeechHandler struct {
	speechService services.SpeechService
}

func NewSpeechHandler(speechService services.SpeechService) *SpeechHandler {
	return &SpeechHandler{speechService: speechService}
}

type evaluateSpeechRequest struct {
	AudioBase64  string `json:"audioBase64" binding:"required"`
	ExpectedText string `json:"expectedText" binding:"required"`
	Language     string `json:"language" binding:"required"`
	MimeType     string `json:"mimeType"`
	Dialect      string `json:"dialect"`
}

func (sh *SpeechHandler) Evaluate(c *gin.Context) {
	var req evaluateSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	result := sh.speechService.Evaluate(c.Request.Context(),
		req.AudioBase64, req.ExpectedText, req.Language, req.MimeType, req.Dialect)
	response.RespondOK(c, result)
}

type synthesizeRequest struct {
	Text     string `json:"text" binding:"required"`
	Language string `json:"language" binding:"required"`
	Dialect  string `json:"dialect"`
	// Accepted but not yet used in voice mapping.
	Gender string `json:"gender"`
}

func (sh *SpeechHandler) Synthesize(c *gin.Context) {
	var req synthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	audio := sh.speechService.Synthesize(c.Request.Context(), req.Text, req.Language, req.Dialect)
	response.RespondOK(c, audio)
}
