package app

import (
	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/handlers"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/server"
)

type Handlers struct {
	Goal       *handlers.GoalHandler
	Curriculum *handlers.CurriculumHandler
	Lesson     *handlers.LessonHandler
	Chat       *handlers.ChatHandler
	Speech     *handlers.SpeechHandler
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Goal:       handlers.NewGoalHandler(svcs.Goal),
		Curriculum: handlers.NewCurriculumHandler(svcs.Curriculum),
		Lesson:     handlers.NewLessonHandler(svcs.Lesson),
		Chat:       handlers.NewChatHandler(svcs.Conversation),
		Speech:     handlers.NewSpeechHandler(svcs.Speech),
	}
}

func wireRouter(cfg Config, h Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowOrigins:      cfg.AllowOrigins,
		GoalHandler:       h.Goal,
		CurriculumHandler: h.Curriculum,
		LessonHandler:     h.Lesson,
		ChatHandler:       h.Chat,
		SpeechHandler:     h.Speech,
	})
}
