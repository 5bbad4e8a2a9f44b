package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sankofalabs/sankofa-backend/internal/platform/gemini"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

// GoalService turns a raw onboarding profile into a detailed learning-goal
// narrative that drives curriculum planning.
type GoalService interface {
	Refine(ctx context.Context, profile types.LearnerProfile) string
}

type goalService struct {
	log *logger.Logger
	gen gemini.Client
}

func NewGoalService(log *logger.Logger, gen gemini.Client) GoalService {
	return &goalService{
		log: log.With("service", "GoalService"),
		gen: gen,
	}
}

// Refine issues a single generation call, no retry. Every failure mode falls
// back to a deterministic string built from profile fields so onboarding can
// always proceed.
func (s *goalService) Refine(ctx context.Context, profile types.LearnerProfile) string {
	prompt := fmt.Sprintf(`You are an expert language learning consultant.
Analyze the following user profile and create a DETAILED, motivating, and specific learning goal description.
This description will be used to guide the creation of a personalized curriculum.

USER PROFILE:
- Name: %s
- Age: %s
- Target Language: %s
- Proficiency Level: %s
- Primary Goal Category: %s
- Specific Context/Details provided by user: "%s"

INSTRUCTIONS:
1. Synthesize the user's inputs into a cohesive narrative.
2. Expand on the "Specific Context" to infer likely scenarios they will encounter.
3. Define what "Success" looks like for this user.
4. Keep it under 100 words.

OUTPUT:
Just the detailed goal description string.`,
		profile.Name, profile.Age, profile.Language, profile.Level, profile.Goal, profile.ContextDetails)

	out, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		if errors.Is(err, gemini.ErrNotConfigured) {
			return fmt.Sprintf("Mock Detailed Goal: User wants to learn %s for %s with context: %s",
				profile.Language, profile.Goal, profile.ContextDetails)
		}
		s.log.Error("goal refinement failed, using fallback", "error", err)
		return fmt.Sprintf("User wants to learn %s for %s.", profile.Language, profile.Goal)
	}
	return out
}
