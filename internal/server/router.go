package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/handlers"
)

type RouterConfig struct {
	AllowOrigins      []string
	GoalHandler       *handlers.GoalHandler
	CurriculumHandler *handlers.CurriculumHandler
	LessonHandler     *handlers.LessonHandler
	ChatHandler       *handlers.ChatHandler
	SpeechHandler     *handlers.SpeechHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/goal/refine", cfg.GoalHandler.Refine)
		api.POST("/curriculum/generate", cfg.CurriculumHandler.Generate)
		api.POST("/lesson/generate", cfg.LessonHandler.Generate)
		api.POST("/chat", cfg.ChatHandler.Chat)
		api.POST("/conversation", cfg.ChatHandler.Conversation)
		api.POST("/speech/evaluate", cfg.SpeechHandler.Evaluate)
		api.POST("/tts", cfg.SpeechHandler.Synthesize)
	}

	return router
}
