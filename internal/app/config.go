package app

import (
	"strings"
	"time"

	"github.com/sankofalabs/sankofa-backend/internal/platform/envutil"
)

type Config struct {
	Port                string
	GeminiAPIKeys       string
	ElevenLabsAPIKey    string
	AllowOrigins        []string
	TranslationCacheMax int
	TranslationCacheTTL time.Duration
	CurriculumTopics    int
	LessonJudgeEnabled  bool
}

func LoadConfig() Config {
	origins := envutil.Str("CORS_ALLOW_ORIGINS", "http://localhost:3000")
	return Config{
		Port:                envutil.Str("PORT", "8080"),
		GeminiAPIKeys:       envutil.Str("GEMINI_API_KEY", ""),
		ElevenLabsAPIKey:    envutil.Str("ELEVENLABS_API_KEY", ""),
		AllowOrigins:        strings.Split(origins, ","),
		TranslationCacheMax: envutil.Int("TRANSLATION_CACHE_SIZE", 1000),
		TranslationCacheTTL: envutil.Duration("TRANSLATION_CACHE_TTL", 24*time.Hour),
		CurriculumTopics:    envutil.Int("CURRICULUM_TOPIC_COUNT", 3),
		LessonJudgeEnabled:  envutil.Bool("LESSON_JUDGE_ENABLED", true),
	}
}
