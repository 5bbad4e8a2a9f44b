package images

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/sankofalabs/sankofa-backend/internal/platform/gemini"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
)

const imagenModel = "imagen-4.0-generate-001"

// Generator turns a free-text prompt into an image reference. Generate never
// fails: when the upstream model is unavailable it falls back to a
// deterministic stock-photo URL derived from the prompt's leading keywords.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

type generator struct {
	log     *logger.Logger
	keys    *gemini.Keyring
	timeout time.Duration
}

func NewGenerator(log *logger.Logger, keys *gemini.Keyring) Generator {
	return &generator{
		log:     log.With("service", "ImageGenerator"),
		keys:    keys,
		timeout: 30 * time.Second,
	}
}

func (g *generator) Generate(ctx context.Context, prompt string) string {
	if !g.keys.Configured() {
		g.log.Warn("no generation key, using placeholder image")
		return PlaceholderURL(prompt)
	}

	uri, err := g.generateImagen(ctx, prompt)
	if err != nil {
		g.log.Error("imagen generation failed, using placeholder", "error", err)
		return PlaceholderURL(prompt)
	}
	return uri
}

func (g *generator) generateImagen(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.keys.Pick(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	one := int32(1)
	resp, err := gc.Models.GenerateImages(ctx, imagenModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: one,
		AspectRatio:    "16:9",
	})
	if err != nil {
		return "", fmt.Errorf("generate images: %w", err)
	}
	if resp == nil || len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", fmt.Errorf("no image in response")
	}

	encoded := base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes)
	return "data:image/png;base64," + encoded, nil
}

// PlaceholderURL builds a stock-photo URL from the first keywords of the
// prompt. Same prompt, same URL.
func PlaceholderURL(prompt string) string {
	words := strings.Fields(prompt)
	if len(words) > 3 {
		words = words[:3]
	}
	keywords := strings.Join(words, ",")
	return "https://source.unsplash.com/1600x900/?" + url.QueryEscape(keywords)
}
