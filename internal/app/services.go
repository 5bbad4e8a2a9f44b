package app

import (
	"fmt"

	"github.com/sankofalabs/sankofa-backend/internal/content"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/platform/translate"
	"github.com/sankofalabs/sankofa-backend/internal/services"
)

type Services struct {
	Translation  services.TranslationService
	Goal         services.GoalService
	Curriculum   services.CurriculumService
	Lesson       services.LessonService
	Conversation services.ConversationService
	Speech       services.SpeechService
}

func wireServices(log *logger.Logger, cfg Config, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	store, err := content.NewStore()
	if err != nil {
		return Services{}, fmt.Errorf("load content templates: %w", err)
	}

	cache := translate.NewCache(cfg.TranslationCacheMax, cfg.TranslationCacheTTL)
	translation := services.NewTranslationService(log, cache, clients.Translate)

	return Services{
		Translation: translation,
		Goal:        services.NewGoalService(log, clients.Gemini),
		Curriculum:  services.NewCurriculumService(log, clients.Gemini, store, cfg.CurriculumTopics),
		Lesson: services.NewLessonService(log, clients.Gemini, translation, clients.Images,
			store, services.DefaultJudgePolicy(cfg.LessonJudgeEnabled)),
		Conversation: services.NewConversationService(log, clients.Gemini, translation, clients.Images),
		Speech:       services.NewSpeechService(log, clients.ElevenLabs),
	}, nil
}
