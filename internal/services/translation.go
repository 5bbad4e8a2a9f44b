package services

import (
	"context"

	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/platform/translate"
)

// TranslationService fronts the translate client with the process-wide
// memoization cache. It never fails: an upstream error yields the source text,
// which is not cached.
type TranslationService interface {
	Translate(ctx context.Context, text, targetLanguage string) string
	ToEnglish(ctx context.Context, text string) string
}

type translationService struct {
	log    *logger.Logger
	cache  *translate.Cache
	client translate.Translator
}

func NewTranslationService(log *logger.Logger, cache *translate.Cache, client translate.Translator) TranslationService {
	return &translationService{
		log:    log.With("service", "TranslationService"),
		cache:  cache,
		client: client,
	}
}

func (s *translationService) Translate(ctx context.Context, text, targetLanguage string) string {
	return s.cached(ctx, text, targetLanguage, func(ctx context.Context) (string, error) {
		return s.client.Translate(ctx, text, targetLanguage)
	})
}

func (s *translationService) ToEnglish(ctx context.Context, text string) string {
	return s.cached(ctx, text, "en", func(ctx context.Context) (string, error) {
		return s.client.ToEnglish(ctx, text)
	})
}

// cached performs the lookup-call-insert sequence. Two concurrent misses on
// the same key may both call upstream; that duplicate work is accepted rather
// than serialized behind a lock.
func (s *translationService) cached(ctx context.Context, text, targetLanguage string, call func(context.Context) (string, error)) string {
	if text == "" {
		return text
	}
	if hit, ok := s.cache.Get(text, targetLanguage); ok {
		return hit
	}
	out, err := call(ctx)
	if err != nil {
		// Client already fell back to the source text; don't cache failures.
		return out
	}
	s.cache.Set(text, targetLanguage, out)
	return out
}
