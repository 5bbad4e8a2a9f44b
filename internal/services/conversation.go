package services

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sankofalabs/sankofa-backend/internal/platform/gemini"
	"github.com/sankofalabs/sankofa-backend/internal/platform/images"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

// ConversationService produces the next roleplay turn for a learner
// utterance. Stateless: the history belongs to the caller and is replayed on
// every request.
type ConversationService interface {
	Respond(ctx context.Context, history []types.ChatTurn, message, language, sceneContext string) types.ChatReply
}

type conversationService struct {
	log        *logger.Logger
	gen        gemini.Client
	translator TranslationService
	images     images.Generator
}

func NewConversationService(
	log *logger.Logger,
	gen gemini.Client,
	translator TranslationService,
	imageGen images.Generator,
) ConversationService {
	return &conversationService{
		log:        log.With("service", "ConversationService"),
		gen:        gen,
		translator: translator,
		images:     imageGen,
	}
}

type conversationResponse struct {
	EnglishResponse string `json:"englishResponse"`
	NextImagePrompt string `json:"nextImagePrompt"`
}

func (s *conversationService) Respond(ctx context.Context, history []types.ChatTurn, message, language, sceneContext string) types.ChatReply {
	// The learner may have typed in either language; produce both renderings
	// concurrently so the UI can echo the utterance with its translation.
	var messageEnglish, messageNative string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		messageEnglish = s.translator.ToEnglish(gctx, message)
		return nil
	})
	g.Go(func() error {
		messageNative = s.translator.Translate(gctx, message, language)
		return nil
	})
	_ = g.Wait()

	reply, err := s.nextTurn(ctx, history, messageEnglish, language, sceneContext)
	if err != nil {
		s.log.Error("conversation turn failed, serving apology", "error", err)
		return s.apology(ctx, language, messageNative)
	}

	out := types.ChatReply{
		NativeText:      s.translator.Translate(ctx, reply.EnglishResponse, language),
		EnglishText:     reply.EnglishResponse,
		UserTranslation: messageNative,
		NextImagePrompt: reply.NextImagePrompt,
	}
	if reply.NextImagePrompt != "" {
		out.NewImageURL = s.images.Generate(ctx, reply.NextImagePrompt)
	}
	return out
}

func (s *conversationService) nextTurn(ctx context.Context, history []types.ChatTurn, message, language, sceneContext string) (conversationResponse, error) {
	turns := make([]gemini.Turn, 0, len(history))
	for _, h := range history {
		role := "user"
		if h.Role == "model" {
			role = "model"
		}
		turns = append(turns, gemini.Turn{Role: role, Text: h.Parts})
	}

	system := fmt.Sprintf(`You are a character in a language immersion roleplay. Stay fully in character.

SCENE: %s
The learner speaks %s at a beginner level. Keep replies short (1-2 sentences), warm and natural for the scene.

Respond to the learner's latest message. If the scene visibly changes (moving location, a new object appears), describe it in nextImagePrompt; otherwise leave it empty.

OUTPUT FORMAT (JSON ONLY):
{ "englishResponse": "your in-character reply in English", "nextImagePrompt": "" }
Return ONLY the JSON object. No markdown.`, sceneContext, language)

	raw, err := s.gen.GenerateChat(ctx, system, turns, message)
	if err != nil {
		return conversationResponse{}, fmt.Errorf("generate turn: %w", err)
	}

	var resp conversationResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &resp); err != nil {
		s.log.Error("conversation response is not valid JSON", "raw", raw)
		return conversationResponse{}, fmt.Errorf("decode turn: %w", err)
	}
	if resp.EnglishResponse == "" {
		return conversationResponse{}, fmt.Errorf("empty conversation response")
	}
	return resp, nil
}

// apology keeps the conversation moving when generation is unavailable. The
// translated rendering still goes through the translator, which itself
// degrades to English when unreachable.
func (s *conversationService) apology(ctx context.Context, language, messageNative string) types.ChatReply {
	const englishText = "Sorry, I did not catch that. Could you say it again?"
	return types.ChatReply{
		NativeText:      s.translator.Translate(ctx, englishText, language),
		EnglishText:     englishText,
		UserTranslation: messageNative,
	}
}
