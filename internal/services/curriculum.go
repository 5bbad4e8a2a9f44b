package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sankofalabs/sankofa-backend/internal/content"
	"github.com/sankofalabs/sankofa-backend/internal/platform/gemini"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

// classifierRule maps goal-text keywords to a curriculum template. Rules are
// evaluated in order; the first match wins and defaultCurriculum covers the
// rest.
type classifierRule struct {
	keywords   []string
	templateID string
}

var classifierRules = []classifierRule{
	{keywords: []string{"business", "work", "job"}, templateID: "business"},
	{keywords: []string{"travel", "trip", "visit"}, templateID: "travel"},
}

const defaultCurriculum = "travel"

// ClassifyGoal is pure and total: any goal text resolves to a curriculum
// template id.
func ClassifyGoal(goal string) string {
	lower := strings.ToLower(goal)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.templateID
			}
		}
	}
	return defaultCurriculum
}

// CurriculumService plans the ordered list of lesson topics for a learner.
type CurriculumService interface {
	Plan(ctx context.Context, profile types.LearnerProfile, detailedGoal string) []types.LessonTopic
}

type curriculumService struct {
	log        *logger.Logger
	gen        gemini.Client
	store      *content.Store
	topicCount int
}

func NewCurriculumService(log *logger.Logger, gen gemini.Client, store *content.Store, topicCount int) CurriculumService {
	if topicCount < 1 {
		topicCount = 3
	}
	return &curriculumService{
		log:        log.With("service", "CurriculumService"),
		gen:        gen,
		store:      store,
		topicCount: topicCount,
	}
}

// Plan prefers the deterministic template strategy and only reaches for the
// generative planner when no template set is registered for the classified
// goal. It never returns an empty list.
func (s *curriculumService) Plan(ctx context.Context, profile types.LearnerProfile, detailedGoal string) []types.LessonTopic {
	goalText := profile.Goal
	if goalText == "" {
		goalText = detailedGoal
	}

	curriculumID := ClassifyGoal(goalText)
	if curriculum, ok := s.store.Curriculum(curriculumID); ok {
		if topics := s.topicsFromTemplates(profile, curriculum); len(topics) > 0 {
			return topics
		}
	}

	s.log.Info("no curriculum template registered, planning generatively", "goal", curriculumID)
	topics, err := s.planGenerative(ctx, profile, detailedGoal)
	if err != nil {
		s.log.Error("generative planning failed, using default curriculum", "error", err)
		return s.defaultTopics(profile)
	}
	return topics
}

func (s *curriculumService) topicsFromTemplates(profile types.LearnerProfile, curriculum content.CurriculumTemplate) []types.LessonTopic {
	pc := content.PersonalizationContext{
		Name:     profile.Name,
		Country:  content.CountryForLanguage(profile.Language),
		City:     content.CityForLanguage(profile.Language),
		Language: profile.Language,
	}

	topics := make([]types.LessonTopic, 0, len(curriculum.Lessons))
	for _, lessonID := range curriculum.Lessons {
		lesson, ok := s.store.Lesson(lessonID)
		if !ok {
			continue
		}
		topics = append(topics, types.LessonTopic{
			Context:     lesson.Scenario,
			Title:       content.Personalize(lesson.Title, pc),
			Description: content.Personalize(lesson.Description, pc),
			TemplateID:  lesson.ID,
		})
	}
	return topics
}

func (s *curriculumService) planGenerative(ctx context.Context, profile types.LearnerProfile, detailedGoal string) ([]types.LessonTopic, error) {
	prompt := fmt.Sprintf(`You are an expert curriculum designer creating a personalized language learning path.

USER PROFILE:
- Name: %s
- Age: %s
- Target Language: %s
- Proficiency Level: %s

DETAILED GOAL:
"%s"

INSTRUCTIONS:
1. Create exactly %d lesson topics that progressively build skills relevant to the goal.
2. "context" should be a simple keyword (e.g., "airport", "meeting", "family_dinner").
3. "title" should be a SIMPLE, COMMON English title (1-3 words max).
4. "description" should PLACE %s IN THE LEARNING CONTEXT (max 15 words). Set the scene of where they are and what they're about to learn. Use present tense.

OUTPUT FORMAT (JSON ARRAY ONLY):
[
    {
        "context": "keyword",
        "title": "Lesson Title",
        "description": "Scene-setting description placing user in context"
    }
]
Return ONLY the JSON array. No markdown.`,
		profile.Name, profile.Age, profile.Language, profile.Level, detailedGoal, s.topicCount, profile.Name)

	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("plan curriculum: %w", err)
	}

	var topics []types.LessonTopic
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(raw)), &topics); err != nil {
		s.log.Error("curriculum response is not valid JSON", "raw", raw)
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("curriculum response had no topics")
	}
	for _, t := range topics {
		if t.Context == "" {
			return nil, fmt.Errorf("curriculum topic missing context key")
		}
	}
	return topics, nil
}

func (s *curriculumService) defaultTopics(profile types.LearnerProfile) []types.LessonTopic {
	return []types.LessonTopic{
		{
			Context:     "greeting",
			Title:       "Introduction",
			Description: fmt.Sprintf("%s meets someone new and practices basic greetings", profile.Name),
		},
		{
			Context:     "general",
			Title:       "General Conversation",
			Description: fmt.Sprintf("%s chats with a friend about everyday topics", profile.Name),
		},
		{
			Context:     "vocabulary",
			Title:       "Key Vocabulary",
			Description: fmt.Sprintf("%s explores essential words for daily life", profile.Name),
		},
	}
}
