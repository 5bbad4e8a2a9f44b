package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sankofalabs/sankofa-backend/internal/content"
	"github.com/sankofalabs/sankofa-backend/internal/platform/gemini"
	"github.com/sankofalabs/sankofa-backend/internal/platform/images"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

// OnJudgeErrorAcceptCandidate is the only judge failure policy in use: when
// the judge call itself fails the candidate lesson is accepted as-is.
// Availability beats strict validation here.
const OnJudgeErrorAcceptCandidate = "acceptCandidate"

// JudgePolicy controls the writer/judge/retry sub-protocol on the generative
// path. At most one regeneration happens regardless of settings.
type JudgePolicy struct {
	Enabled bool
	OnError string
}

func DefaultJudgePolicy(enabled bool) JudgePolicy {
	return JudgePolicy{Enabled: enabled, OnError: OnJudgeErrorAcceptCandidate}
}

// LessonService composes the full lesson plan for one curriculum topic.
// Compose never fails: it walks template, generative and finally static-mock
// rungs until it has a well-formed lesson.
type LessonService interface {
	Compose(ctx context.Context, contextKey, language, level, goal, forcedTitle string) types.GeneratedLesson
}

type lessonService struct {
	log        *logger.Logger
	gen        gemini.Client
	translator TranslationService
	images     images.Generator
	store      *content.Store
	judge      JudgePolicy
}

func NewLessonService(
	log *logger.Logger,
	gen gemini.Client,
	translator TranslationService,
	imageGen images.Generator,
	store *content.Store,
	judge JudgePolicy,
) LessonService {
	return &lessonService{
		log:        log.With("service", "LessonService"),
		gen:        gen,
		translator: translator,
		images:     imageGen,
		store:      store,
		judge:      judge,
	}
}

func (s *lessonService) Compose(ctx context.Context, contextKey, language, level, goal, forcedTitle string) types.GeneratedLesson {
	if level == "" {
		level = "Beginner"
	}
	if goal == "" {
		goal = "General"
	}

	if tmpl, ok := s.store.Lesson(contextKey); ok {
		lesson, err := s.composeFromTemplate(ctx, tmpl, contextKey, language, forcedTitle)
		if err == nil {
			return lesson
		}
		s.log.Error("template path failed, falling back to generative path",
			"context", contextKey, "error", err)
	}

	plan, err := s.composeGenerative(ctx, contextKey, language, level, goal, forcedTitle)
	if err != nil {
		s.log.Error("generative path failed, serving mock lesson",
			"context", contextKey, "error", err)
		plan = s.mockLesson(contextKey, goal)
	}
	return s.withImages(ctx, plan)
}

// ---- template path ----

func (s *lessonService) composeFromTemplate(ctx context.Context, tmpl content.LessonTemplate, contextKey, language, forcedTitle string) (types.GeneratedLesson, error) {
	persona, ok := s.store.Persona(tmpl.PersonaID)
	if !ok {
		return types.GeneratedLesson{}, fmt.Errorf("persona %q not registered", tmpl.PersonaID)
	}

	pc := content.PersonalizationContext{
		Name:     "The learner",
		Country:  content.CountryForLanguage(language),
		City:     content.CityForLanguage(language),
		Language: language,
	}

	openingEnglish := content.Personalize(tmpl.OpeningLine, pc)
	headerPrompt := content.Personalize(tmpl.ImagePrompt, pc)
	characterPrompt := fmt.Sprintf(
		"A photorealistic portrait of a %s in %s. %s Warm lighting, detailed.",
		persona.Role, pc.Country, persona.Personality)

	// Localization and both images only depend on text that is already
	// final, so all four calls run concurrently and are joined once.
	var (
		localized     localizedLesson
		nativeOpening string
		headerImage   string
		charImage     string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		localized, err = s.localizeTemplate(gctx, tmpl, pc)
		return err
	})
	g.Go(func() error {
		nativeOpening = s.translator.Translate(gctx, openingEnglish, language)
		return nil
	})
	g.Go(func() error {
		headerImage = s.images.Generate(gctx, headerPrompt)
		return nil
	})
	g.Go(func() error {
		charImage = s.images.Generate(gctx, characterPrompt)
		return nil
	})
	if err := g.Wait(); err != nil {
		return types.GeneratedLesson{}, err
	}

	title := tmpl.Title
	if forcedTitle != "" {
		title = forcedTitle
	}

	note := types.CulturalNote{}
	if len(localized.CulturalNotes) > 0 {
		note = localized.CulturalNotes[0]
	} else if len(tmpl.CulturalNoteTopics) > 0 {
		note.Title = content.Personalize(tmpl.CulturalNoteTopics[0], pc)
	}

	plan := types.LessonPlan{
		Title:                title,
		Location:             fmt.Sprintf("%s, %s", pc.City, pc.Country),
		Character:            persona.Role,
		CharacterDescription: persona.Personality,
		Scenario:             content.Personalize(tmpl.Description, pc),
		InitialDialogue: []types.DialogueLine{
			{
				ID:          uuid.NewString(),
				Speaker:     types.SpeakerNative,
				NativeText:  nativeOpening,
				EnglishText: openingEnglish,
			},
		},
		CulturalNote: note,
		Vocabulary:   localized.Vocabulary,
		KeyPhrases:   localized.KeyPhrases,
		ImagePrompts: types.ImagePrompts{Header: headerPrompt, Character: characterPrompt},
		Context:      contextKey,
	}
	return types.GeneratedLesson{
		LessonPlan:     plan,
		HeaderImage:    headerImage,
		CharacterImage: charImage,
	}, nil
}

type localizedLesson struct {
	Vocabulary    []types.VocabularyItem `json:"vocabulary"`
	KeyPhrases    []types.KeyPhrase      `json:"keyPhrases"`
	CulturalNotes []types.CulturalNote   `json:"culturalNotes"`
}

// localizeTemplate renders a template's English concepts into the target
// language in one batched generation call. One call per lesson, not per item:
// per-item calls would multiply latency and cost by the concept count.
func (s *lessonService) localizeTemplate(ctx context.Context, tmpl content.LessonTemplate, pc content.PersonalizationContext) (localizedLesson, error) {
	concepts := make([]string, 0, len(tmpl.KeyPhrases))
	for _, p := range tmpl.KeyPhrases {
		concepts = append(concepts, p.Concept)
	}
	topics := make([]string, 0, len(tmpl.CulturalNoteTopics))
	for _, t := range tmpl.CulturalNoteTopics {
		topics = append(topics, content.Personalize(t, pc))
	}

	vocabJSON, _ := json.Marshal(tmpl.Vocabulary)
	phrasesJSON, _ := json.Marshal(concepts)
	topicsJSON, _ := json.Marshal(topics)

	prompt := fmt.Sprintf(`You are an expert translator and cultural consultant for an African language learning app.

TARGET LANGUAGE: %s
TARGET REGION: %s

INPUT DATA (English):
Vocabulary: %s
Phrase concepts: %s
Cultural topics: %s

INSTRUCTIONS:
1. Translate the Vocabulary into %s. Provide a phonetic pronunciation guide (easy-read, not strict IPA).
2. Render each phrase concept as the natural, spoken %s phrase a local would actually use. E.g., for the concept "How much?", use the common market bargaining phrase.
3. Write a short cultural note for each topic, specific to %s and %s speakers. Max 2 sentences each. The "pronunciation" field is for the main local term discussed, if any.

OUTPUT FORMAT (JSON ONLY):
{
    "vocabulary": [
        { "native": "...", "pronunciation": "...", "english": "..." }
    ],
    "keyPhrases": [
        { "native": "...", "pronunciation": "...", "english": "..." }
    ],
    "culturalNotes": [
        { "title": "...", "pronunciation": "...", "description": "..." }
    ]
}
Return ONLY the JSON object. No markdown.`,
		pc.Language, pc.Country, vocabJSON, phrasesJSON, topicsJSON,
		pc.Language, pc.Language, pc.Country, pc.Language)

	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return localizedLesson{}, fmt.Errorf("localize template: %w", err)
	}

	var out localizedLesson
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &out); err != nil {
		s.log.Error("localization response is not valid JSON", "raw", raw)
		return localizedLesson{}, fmt.Errorf("decode localization: %w", err)
	}
	if len(out.Vocabulary) == 0 {
		return localizedLesson{}, fmt.Errorf("localization returned no vocabulary")
	}
	return out, nil
}

// ---- generative path ----

type rawDialogueLine struct {
	Speaker     string `json:"speaker"`
	EnglishText string `json:"englishText"`
}

type rawLesson struct {
	Title                string                 `json:"title"`
	Location             string                 `json:"location"`
	Character            string                 `json:"character"`
	CharacterDescription string                 `json:"characterDescription"`
	Scenario             string                 `json:"scenario"`
	InitialDialogue      []rawDialogueLine      `json:"initialDialogue"`
	CulturalNote         types.CulturalNote     `json:"culturalNote"`
	ImagePrompts         types.ImagePrompts     `json:"imagePrompts"`
	Vocabulary           []types.VocabularyItem `json:"vocabulary"`
	KeyPhrases           []types.KeyPhrase      `json:"keyPhrases"`
}

type judgeVerdict struct {
	Valid    bool   `json:"valid"`
	Feedback string `json:"feedback"`
}

func (s *lessonService) composeGenerative(ctx context.Context, contextKey, language, level, goal, forcedTitle string) (types.LessonPlan, error) {
	prompt := s.lessonPrompt(contextKey, language, level, goal, forcedTitle, "")
	candidate, candidateJSON, err := s.generateCandidate(ctx, prompt)
	if err != nil {
		return types.LessonPlan{}, err
	}

	if s.judge.Enabled {
		verdict, jerr := s.judgeLesson(ctx, candidateJSON, goal)
		switch {
		case jerr != nil:
			// Fail-open: a broken judge must not block lesson delivery.
			s.log.Warn("judge call failed, accepting candidate",
				"policy", s.judge.OnError, "error", jerr)
		case !verdict.Valid:
			s.log.Info("judge rejected candidate, regenerating once", "feedback", verdict.Feedback)
			retryPrompt := s.lessonPrompt(contextKey, language, level, goal, forcedTitle, verdict.Feedback)
			second, _, rerr := s.generateCandidate(ctx, retryPrompt)
			if rerr != nil {
				s.log.Warn("regeneration failed, keeping first candidate", "error", rerr)
			} else {
				// The second attempt is accepted unconditionally; the
				// judge is not consulted again.
				candidate = second
			}
		}
	}

	return s.finalizeGenerated(ctx, candidate, language, contextKey), nil
}

func (s *lessonService) generateCandidate(ctx context.Context, prompt string) (rawLesson, string, error) {
	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return rawLesson{}, "", fmt.Errorf("generate lesson: %w", err)
	}

	cleaned := gemini.ExtractJSON(raw)
	var lesson rawLesson
	if err := json.Unmarshal([]byte(cleaned), &lesson); err != nil {
		s.log.Error("lesson response is not valid JSON", "raw", raw)
		return rawLesson{}, "", fmt.Errorf("decode lesson: %w", err)
	}
	if len(lesson.InitialDialogue) == 0 || lesson.InitialDialogue[0].EnglishText == "" {
		return rawLesson{}, "", fmt.Errorf("generated lesson has no opening dialogue")
	}
	return lesson, cleaned, nil
}

func (s *lessonService) judgeLesson(ctx context.Context, candidateJSON, goal string) (judgeVerdict, error) {
	prompt := fmt.Sprintf(`You are a strict quality reviewer for language lessons.

STATED LEARNER GOAL:
"%s"

CANDIDATE LESSON (JSON):
%s

Judge whether the lesson specifically serves the stated goal: realistic scenario, level-appropriate dialogue, culturally accurate content.

OUTPUT FORMAT (JSON ONLY):
{ "valid": true or false, "feedback": "one sentence on what to fix when invalid, otherwise empty" }
Return ONLY the JSON object. No markdown.`, goal, candidateJSON)

	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return judgeVerdict{}, fmt.Errorf("judge lesson: %w", err)
	}
	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &verdict); err != nil {
		return judgeVerdict{}, fmt.Errorf("decode judge verdict: %w", err)
	}
	return verdict, nil
}

// finalizeGenerated translates the dialogue into the target language. Lines
// are independent, so they are translated concurrently. Translation never
// fails (it degrades to the English text), so this cannot error.
func (s *lessonService) finalizeGenerated(ctx context.Context, lesson rawLesson, language, contextKey string) types.LessonPlan {
	dialogue := make([]types.DialogueLine, len(lesson.InitialDialogue))
	g, gctx := errgroup.WithContext(ctx)
	for i, line := range lesson.InitialDialogue {
		g.Go(func() error {
			speaker := types.SpeakerNative
			if line.Speaker == string(types.SpeakerLearner) {
				speaker = types.SpeakerLearner
			}
			dialogue[i] = types.DialogueLine{
				ID:          uuid.NewString(),
				Speaker:     speaker,
				NativeText:  s.translator.Translate(gctx, line.EnglishText, language),
				EnglishText: line.EnglishText,
			}
			return nil
		})
	}
	_ = g.Wait()

	return types.LessonPlan{
		Title:                lesson.Title,
		Location:             lesson.Location,
		Character:            lesson.Character,
		CharacterDescription: lesson.CharacterDescription,
		Scenario:             lesson.Scenario,
		InitialDialogue:      dialogue,
		CulturalNote:         lesson.CulturalNote,
		Vocabulary:           lesson.Vocabulary,
		KeyPhrases:           lesson.KeyPhrases,
		ImagePrompts:         lesson.ImagePrompts,
		Context:              contextKey,
	}
}

func (s *lessonService) lessonPrompt(contextKey, language, level, goal, forcedTitle, feedback string) string {
	titleLine := "A short, catchy title (MAX 3 WORDS)"
	titleRequirement := ""
	if forcedTitle != "" {
		titleLine = forcedTitle
		titleRequirement = fmt.Sprintf("\n- REQUIRED TITLE: %q", forcedTitle)
	}
	feedbackBlock := ""
	if feedback != "" {
		feedbackBlock = fmt.Sprintf("\nREVIEWER FEEDBACK ON YOUR PREVIOUS ATTEMPT (you must address this):\n%q\n", feedback)
	}

	return fmt.Sprintf(`You are an expert language tutor creating a personalized lesson for a %s learner of %s.

USER PROFILE:
- Target Language: %s
- Proficiency Level: %s
- Learning Goal: "%s"

LESSON CONTEXT:
- Scenario Context: "%s"%s
%s
INSTRUCTIONS:
Create a realistic, culturally-rich lesson that SPECIFICALLY addresses the user's goal of "%s" within the context of "%s".

OUTPUT FORMAT (JSON ONLY):
{
    "title": "%s",
    "location": "Specific setting name",
    "character": "Name of the character the learner talks to",
    "characterDescription": "Visual description of the character",
    "scenario": "1-sentence description of the lesson objective",
    "initialDialogue": [
        {
            "speaker": "native",
            "englishText": "The opening line in English"
        }
    ],
    "culturalNote": {
        "title": "Name of a cultural concept",
        "pronunciation": "Phonetic pronunciation",
        "description": "Explanation relevant to the goal"
    },
    "vocabulary": [
        { "native": "word in %s", "pronunciation": "...", "english": "..." }
    ],
    "keyPhrases": [
        { "native": "phrase in %s", "pronunciation": "...", "english": "..." }
    ],
    "imagePrompts": {
        "header": "Photorealistic prompt for the scene. Style: Cinematic, 8k, warm lighting.",
        "character": "Photorealistic portrait prompt for the character. Style: Cinematic, 8k, warm lighting."
    }
}
Return ONLY the JSON object. No markdown.`,
		level, language, language, level, goal, contextKey, titleRequirement, feedbackBlock,
		goal, contextKey, titleLine, language, language)
}

// ---- terminal fallback ----

// mockLesson is the last rung: hand-authored content that can never fail.
func (s *lessonService) mockLesson(contextKey, goal string) types.LessonPlan {
	return types.LessonPlan{
		Title:                fmt.Sprintf("%s Lesson: %s (Mock)", goal, contextKey),
		Location:             "Makola Market, Accra",
		Character:            "Auntie Akosua",
		CharacterDescription: "A friendly middle-aged woman wearing a colorful Kente cloth.",
		Scenario:             fmt.Sprintf("Practice %s conversation for your %s goals.", contextKey, goal),
		InitialDialogue: []types.DialogueLine{
			{
				ID:          uuid.NewString(),
				Speaker:     types.SpeakerNative,
				NativeText:  "Ete sen?",
				EnglishText: "How are you?",
			},
		},
		CulturalNote: types.CulturalNote{
			Title:         "Mepaakyew",
			Pronunciation: "Meh-paa-chew",
			Description:   "Always use this when starting a request with an elder.",
		},
		ImagePrompts: types.ImagePrompts{
			Header:    fmt.Sprintf("A vibrant scene for %s practice at %s, photorealistic, first-person view.", goal, contextKey),
			Character: "A portrait of a friendly Ghanaian market woman, traditional Kente clothing, warm lighting.",
		},
		Context: contextKey,
	}
}

func (s *lessonService) withImages(ctx context.Context, plan types.LessonPlan) types.GeneratedLesson {
	out := types.GeneratedLesson{LessonPlan: plan}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.HeaderImage = s.images.Generate(gctx, plan.ImagePrompts.Header)
		return nil
	})
	g.Go(func() error {
		out.CharacterImage = s.images.Generate(gctx, plan.ImagePrompts.Character)
		return nil
	})
	_ = g.Wait()
	return out
}
