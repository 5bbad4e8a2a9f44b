package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
)

const defaultModel = "gemini-2.5-flash"

// ErrNotConfigured is returned when no API key is available. Callers treat it
// like any other upstream failure and take their static fallback.
var ErrNotConfigured = errors.New("gemini: no api key configured")

// Turn is one prior exchange of a chat-style generation call.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Client is the uniform interface to the text-generation service. Responses
// are raw text; callers that expect JSON decode it behind ExtractJSON.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateChat(ctx context.Context, system string, history []Turn, message string) (string, error)
}

type client struct {
	log     *logger.Logger
	keys    *Keyring
	model   string
	timeout time.Duration
}

func NewClient(log *logger.Logger, keys *Keyring) Client {
	return &client{
		log:     log.With("service", "GeminiClient"),
		keys:    keys,
		model:   defaultModel,
		timeout: 30 * time.Second,
	}
}

func (c *client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt), nil)
}

func (c *client) GenerateChat(ctx context.Context, system string, history []Turn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, t := range history {
		role := genai.RoleUser
		if t.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: t.Text}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  genai.RoleUser,
		Parts: []*genai.Part{{Text: message}},
	})

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		}
	}
	return c.generate(ctx, contents, cfg)
}

// generate dials a fresh SDK client with a rotated key for every call,
// mirroring the random key selection in the keyring.
func (c *client) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	key := c.keys.Pick()
	if key == "" {
		c.log.Warn("generation requested without configured key")
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create gemini client: %w", err)
	}

	resp, err := gc.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
