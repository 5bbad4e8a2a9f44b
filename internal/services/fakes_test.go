package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sankofalabs/sankofa-backend/internal/platform/gemini"
)

// fakeGen replays a scripted queue of generation results. Once the queue is
// exhausted every further call errors, which doubles as the "provider down"
// fixture when the queue starts empty.
type fakeGen struct {
	mu        sync.Mutex
	responses []string
	prompts   []string
}

func newFakeGen(responses ...string) *fakeGen {
	return &fakeGen{responses: responses}
}

func (f *fakeGen) next(prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if len(f.responses) == 0 {
		return "", fmt.Errorf("generation unavailable")
	}
	out := f.responses[0]
	f.responses = f.responses[1:]
	return out, nil
}

func (f *fakeGen) GenerateText(_ context.Context, prompt string) (string, error) {
	return f.next(prompt)
}

func (f *fakeGen) GenerateChat(_ context.Context, system string, _ []gemini.Turn, message string) (string, error) {
	return f.next(system + "\n" + message)
}

func (f *fakeGen) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

var _ gemini.Client = (*fakeGen)(nil)

// fakeTranslator tags text with the target language so tests can tell a
// translated string from a passthrough.
type fakeTranslator struct{}

func (fakeTranslator) Translate(_ context.Context, text, targetLanguage string) string {
	return targetLanguage + ":" + text
}

func (fakeTranslator) ToEnglish(_ context.Context, text string) string {
	return "en:" + text
}

var _ TranslationService = fakeTranslator{}

type fakeImages struct{}

func (fakeImages) Generate(_ context.Context, prompt string) string {
	return "img://" + prompt
}
