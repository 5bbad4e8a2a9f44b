package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/http/response"
	"github.com/sankofalabs/sankofa-backend/internal/services"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

// ChatHandler serves both conversation routes. /api/chat is the bare
// roleplay turn; /api/conversation additionally folds a persona description
// into the scene context.
type ChatHandler struct {
	conversationService services.ConversationService
}

func NewChatHandler(conversationService services.ConversationService) *ChatHandler {
	return &ChatHandler{conversationService: conversationService}
}

type chatRequest struct {
	History  []types.ChatTurn `json:"history"`
	Message  string           `json:"message" binding:"required"`
	Language string           `json:"language" binding:"required"`
	Context  string           `json:"context"`
	Persona  string           `json:"persona"`
}

func (ch *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	reply := ch.conversationService.Respond(c.Request.Context(),
		req.History, req.Message, req.Language, req.Context)
	response.RespondOK(c, reply)
}

func (ch *ChatHandler) Conversation(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	sceneContext := req.Context
	if req.Persona != "" {
		sceneContext = fmt.Sprintf("%s You are %s.", sceneContext, req.Persona)
	}
	reply := ch.conversationService.Respond(c.Request.Context(),
		req.History, req.Message, req.Language, sceneContext)
	response.RespondOK(c, reply)
}
