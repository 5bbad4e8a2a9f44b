package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
)

const (
	baseURL  = "https://api.elevenlabs.io/v1"
	ttsModel = "eleven_multilingual_v2"
	sttModel = "scribe_v1"
)

// ErrNotConfigured is returned when no ElevenLabs API key is set.
var ErrNotConfigured = errors.New("elevenlabs: api key not configured")

// Client is the speech-service surface the pipeline uses: text-to-speech
// against a resolved voice id, and audio transcription with a language hint.
type Client interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
	Transcribe(ctx context.Context, audio []byte, mimeType, languageCode string) (string, error)
}

type client struct {
	log        *logger.Logger
	apiKey     string
	httpClient *http.Client
}

func NewClient(log *logger.Logger, apiKey string) Client {
	return &client{
		log:    log.With("service", "ElevenLabsClient"),
		apiKey: strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *client) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	payload := map[string]any{
		"text":     text,
		"model_id": ttsModel,
		"voice_settings": map[string]any{
			"stability":         0.5,
			"similarity_boost":  0.75,
			"use_speaker_boost": true,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal tts payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		baseURL+"/text-to-speech/"+voiceID, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call tts: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("tts status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts audio: %w", err)
	}
	return audio, nil
}

func (c *client) Transcribe(ctx context.Context, audio []byte, mimeType, languageCode string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", "recording."+fileExt(mimeType))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	if err := mw.WriteField("model_id", sttModel); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := mw.WriteField("language_code", languageCode); err != nil {
		return "", fmt.Errorf("write language field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/speech-to-text", &buf)
	if err != nil {
		return "", fmt.Errorf("build stt request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call stt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("stt status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode stt response: %w", err)
	}
	return out.Text, nil
}

func fileExt(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "mp3"), strings.Contains(mimeType, "mpeg"):
		return "mp3"
	case strings.Contains(mimeType, "ogg"):
		return "ogg"
	case strings.Contains(mimeType, "wav"):
		return "wav"
	case strings.Contains(mimeType, "mp4"):
		return "mp4"
	default:
		return "webm"
	}
}
