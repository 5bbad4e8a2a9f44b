package services

import (
	"context"
	"strings"
	"testing"

	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestGoalRefine(t *testing.T) {
	profile := types.LearnerProfile{
		Name:           "Ama",
		Age:            "24",
		Language:       "Twi",
		Level:          "Beginner",
		Goal:           "travel",
		ContextDetails: "Visiting family in Accra",
	}

	t.Run("uses generated narrative", func(t *testing.T) {
		svc := NewGoalService(testLogger(t), newFakeGen("Ama will confidently greet relatives in Accra."))
		got := svc.Refine(context.Background(), profile)
		if got != "Ama will confidently greet relatives in Accra." {
			t.Fatalf("Refine() = %q", got)
		}
	})

	t.Run("falls back deterministically on provider failure", func(t *testing.T) {
		svc := NewGoalService(testLogger(t), newFakeGen())
		got := svc.Refine(context.Background(), profile)
		if got == "" {
			t.Fatal("Refine() returned empty goal on failure")
		}
		if !strings.Contains(got, "Twi") || !strings.Contains(got, "travel") {
			t.Fatalf("fallback goal missing profile fields: %q", got)
		}
	})
}
