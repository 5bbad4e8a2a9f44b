package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sankofalabs/sankofa-backend/internal/types"
)

type stubGoal struct{}

func (stubGoal) Refine(_ context.Context, p types.LearnerProfile) string {
	return "goal for " + p.Name
}

type stubConversation struct{}

func (stubConversation) Respond(_ context.Context, _ []types.ChatTurn, message, language, _ string) types.ChatReply {
	return types.ChatReply{EnglishText: "reply to " + message, NativeText: language + ": reply"}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	gh := NewGoalHandler(stubGoal{})
	ch := NewChatHandler(stubConversation{})
	router.POST("/api/goal/refine", gh.Refine)
	router.POST("/api/chat", ch.Chat)
	router.GET("/healthcheck", HealthCheck)
	return router
}

func TestGoalRefineEndpoint(t *testing.T) {
	router := newTestRouter()

	t.Run("valid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/goal/refine",
			strings.NewReader(`{"name":"Ama","language":"Twi","goal":"travel"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		var out map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if out["detailedGoal"] != "goal for Ama" {
			t.Fatalf("detailedGoal = %q", out["detailedGoal"])
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/goal/refine", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "error") {
			t.Fatalf("body = %s, want error envelope", rec.Body.String())
		}
	})
}

func TestChatEndpointValidation(t *testing.T) {
	router := newTestRouter()

	// message and language are required.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"history":[]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status = %d, body = %q", rec.Code, rec.Body.String())
	}
}
