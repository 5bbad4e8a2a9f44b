package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
)

const endpoint = "https://translate.googleapis.com/translate_a/single"

// languageCodeMap remaps language names whose ISO code differs from the
// obvious lowercase form. Twi and Akan both resolve to the Akan code.
var languageCodeMap = map[string]string{
	"twi":  "ak",
	"akan": "ak",
}

// LanguageCode resolves a display language name to the code the translation
// service expects. Unknown names pass through lowercased, which covers the
// standard codes.
func LanguageCode(language string) string {
	lower := strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodeMap[lower]; ok {
		return code
	}
	return lower
}

// Translator converts text between English and the learner's target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
	ToEnglish(ctx context.Context, text string) (string, error)
}

type client struct {
	log        *logger.Logger
	httpClient *http.Client
}

func NewClient(log *logger.Logger) Translator {
	return &client{
		log: log.With("service", "TranslateClient"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Translate returns the text rendered in the target language. On any failure
// it returns the input text together with the error, so callers can keep
// going with the untranslated form.
func (c *client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	out, err := c.call(ctx, text, LanguageCode(targetLanguage))
	if err != nil {
		c.log.Error("translation failed", "target", targetLanguage, "error", err)
		return text, err
	}
	return out, nil
}

func (c *client) ToEnglish(ctx context.Context, text string) (string, error) {
	out, err := c.call(ctx, text, "en")
	if err != nil {
		c.log.Error("translation to english failed", "error", err)
		return text, err
	}
	return out, nil
}

func (c *client) call(ctx context.Context, text, targetCode string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", targetCode)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call translate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("translate status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return decodeSegments(body)
}

// decodeSegments parses the service's nested-array payload: the first element
// is a list of segments whose first field is the translated text.
func decodeSegments(body []byte) (string, error) {
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decode translation payload: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty translation payload")
	}
	segments, ok := raw[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translation payload shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		fields, ok := seg.([]any)
		if !ok || len(fields) == 0 {
			continue
		}
		if s, ok := fields[0].(string); ok {
			sb.WriteString(s)
		}
	}
	out := sb.String()
	if out == "" {
		return "", fmt.Errorf("translation payload had no text segments")
	}
	return out, nil
}
