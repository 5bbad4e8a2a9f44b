package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sankofalabs/sankofa-backend/internal/platform/elevenlabs"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/types"
)

// SpeechService scores recorded pronunciation attempts and synthesizes native
// audio for phrases. Both operations report failure inside the result instead
// of returning an error: the practice loop must keep going.
type SpeechService interface {
	Evaluate(ctx context.Context, audioBase64, expectedText, language, mimeType, dialect string) types.SpeechEvaluation
	Synthesize(ctx context.Context, text, language, dialect string) types.SpeechAudio
}

type speechService struct {
	log    *logger.Logger
	client elevenlabs.Client
}

func NewSpeechService(log *logger.Logger, client elevenlabs.Client) SpeechService {
	return &speechService{
		log:    log.With("service", "SpeechService"),
		client: client,
	}
}

func (s *speechService) Evaluate(ctx context.Context, audioBase64, expectedText, language, mimeType, dialect string) types.SpeechEvaluation {
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	audio, err := base64.StdEncoding.DecodeString(audioBase64)
	if err != nil {
		return types.SpeechEvaluation{Issues: []types.PhonemeIssue{}, Error: "Invalid audio payload."}
	}

	transcript, err := s.client.Transcribe(ctx, audio, mimeType, elevenlabs.TranscriptionCode(language))
	if err != nil {
		if errors.Is(err, elevenlabs.ErrNotConfigured) {
			return types.SpeechEvaluation{Issues: []types.PhonemeIssue{}, Error: "Speech evaluation not configured. Missing API key."}
		}
		s.log.Error("transcription failed", "language", language, "error", err)
		return types.SpeechEvaluation{Issues: []types.PhonemeIssue{}, Error: fmt.Sprintf("Speech transcription failed: %v", err)}
	}
	if transcript == "" {
		return types.SpeechEvaluation{Issues: []types.PhonemeIssue{}, Error: "Could not understand the speech. Please speak more clearly and try again."}
	}

	accuracy := similarity(expectedText, transcript)
	s.log.Info("speech evaluated", "language", language, "dialect", dialect, "accuracy", accuracy)

	return types.SpeechEvaluation{
		Transcript:      transcript,
		Phonemes:        estimatePhonemes(transcript),
		Accuracy:        accuracy,
		Issues:          identifyIssues(expectedText, transcript),
		ToneScore:       accuracy,
		RhythmScore:     accuracy,
		DialectFeedback: accuracyFeedback(accuracy),
	}
}

func (s *speechService) Synthesize(ctx context.Context, text, language, dialect string) types.SpeechAudio {
	voiceID := elevenlabs.ResolveVoice(language, dialect)
	audio, err := s.client.Synthesize(ctx, text, voiceID)
	if err != nil {
		if errors.Is(err, elevenlabs.ErrNotConfigured) {
			return types.SpeechAudio{Error: "Text-to-speech not configured. Missing API key."}
		}
		s.log.Error("synthesis failed", "voice", voiceID, "error", err)
		return types.SpeechAudio{Error: fmt.Sprintf("Text-to-speech failed: %v", err)}
	}
	return types.SpeechAudio{AudioData: base64.StdEncoding.EncodeToString(audio)}
}

// similarity scores how close the spoken transcript is to the expected phrase
// using Levenshtein distance over the lowercased strings, scaled to 0-100.
func similarity(expected, spoken string) int {
	a := []rune(strings.ToLower(strings.TrimSpace(expected)))
	b := []rune(strings.ToLower(strings.TrimSpace(spoken)))

	if string(a) == string(b) {
		return 100
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		for j := 1; j <= len(a); j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = min(prev[j-1], curr[j-1], prev[j]) + 1
			}
		}
		prev, curr = curr, prev
	}
	distance := prev[len(a)]

	maxLen := max(len(a), len(b))
	score := int(float64(maxLen-distance)/float64(maxLen)*100 + 0.5)
	if score < 0 {
		score = 0
	}
	return score
}

// identifyIssues compares the phrases word by word. Extra spoken words are
// ignored; missing words are reported with a "(missing)" marker.
func identifyIssues(expected, spoken string) []types.PhonemeIssue {
	expectedWords := strings.Fields(strings.ToLower(strings.TrimSpace(expected)))
	spokenWords := strings.Fields(strings.ToLower(strings.TrimSpace(spoken)))

	issues := []types.PhonemeIssue{}
	for i, want := range expectedWords {
		got := ""
		if i < len(spokenWords) {
			got = spokenWords[i]
		}
		switch {
		case got == "":
			issues = append(issues, types.PhonemeIssue{
				Phoneme:        want,
				UserPronounced: "(missing)",
				Tip:            fmt.Sprintf("The word %q was not detected. Make sure to say all words clearly.", want),
			})
		case got != want:
			issues = append(issues, types.PhonemeIssue{
				Phoneme:        want,
				UserPronounced: got,
				Tip:            fmt.Sprintf("Try pronouncing %q more clearly. You said %q.", want, got),
			})
		}
	}
	return issues
}

func accuracyFeedback(accuracy int) string {
	switch {
	case accuracy >= 90:
		return "Excellent pronunciation! Your speech closely matches the expected text."
	case accuracy >= 70:
		return "Good attempt! There are a few words that need improvement."
	case accuracy >= 50:
		return "Keep practicing! Focus on pronouncing each word clearly."
	default:
		return "Try again and speak slowly. Make sure you're saying the correct phrase."
	}
}

// phonemeMap carries approximate IPA renderings for sounds common across the
// supported West and East African languages. Digraphs must be applied before
// single letters.
var phonemeMap = map[string]string{
	"ẹ": "ɛ", "ọ": "ɔ", "ṣ": "ʃ",
	"sh": "ʃ", "ch": "tʃ", "gh": "ɣ", "ny": "ɲ", "ng": "ŋ",
	"gb": "g͡b", "kp": "k͡p", "dz": "d͡z", "ts": "t͡s",
	"aa": "aː", "ee": "eː", "ii": "iː", "oo": "oː", "uu": "uː",
	"j": "dʒ", "y": "j",
}

var phonemeKeys = func() []string {
	keys := make([]string, 0, len(phonemeMap))
	for k := range phonemeMap {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

var punctRe = regexp.MustCompile(`[.,!?]`)
var spaceRe = regexp.MustCompile(`\s+`)

// estimatePhonemes produces a rough IPA-like rendering of the transcript. It
// is an approximation from orthography, not a phonetic-dictionary lookup.
func estimatePhonemes(text string) string {
	result := strings.ToLower(strings.TrimSpace(text))
	for _, key := range phonemeKeys {
		result = strings.ReplaceAll(result, key, phonemeMap[key])
	}
	result = punctRe.ReplaceAllString(result, "")
	result = spaceRe.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
