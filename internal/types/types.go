package types

// LearnerProfile is the onboarding profile a learner completes before any
// content is generated. DetailedGoal is attached once by the goal refiner and
// immutable for the rest of the session.
type LearnerProfile struct {
	Name           string `json:"name"`
	Age            string `json:"age"`
	Language       string `json:"language"`
	Level          string `json:"level"`
	Goal           string `json:"goal"`
	ContextDetails string `json:"contextDetails"`
	DetailedGoal   string `json:"detailedGoal,omitempty"`
}

// LessonTopic is one scenario-sized unit of curriculum. Context is a stable
// slug, unique within a curriculum, and is the key lesson composition is
// requested by.
type LessonTopic struct {
	Context     string `json:"context"`
	Title       string `json:"title"`
	Description string `json:"description"`
	TemplateID  string `json:"templateId,omitempty"`
}

type Speaker string

const (
	SpeakerNative  Speaker = "native"
	SpeakerLearner Speaker = "learner"
)

// DialogueLine is one turn of a lesson's scripted dialogue. The first line is
// always usable as the conversation seed.
type DialogueLine struct {
	ID          string  `json:"id"`
	Speaker     Speaker `json:"speaker"`
	NativeText  string  `json:"nativeText"`
	EnglishText string  `json:"englishText"`
}

type CulturalNote struct {
	Title         string `json:"title"`
	Pronunciation string `json:"pronunciation"`
	Description   string `json:"description"`
}

type VocabularyItem struct {
	Native        string `json:"native"`
	Pronunciation string `json:"pronunciation"`
	English       string `json:"english"`
}

type KeyPhrase struct {
	Native        string `json:"native"`
	Pronunciation string `json:"pronunciation"`
	English       string `json:"english"`
}

type ImagePrompts struct {
	Header    string `json:"header"`
	Character string `json:"character"`
}

// LessonPlan is the fully composed learning content for one topic.
type LessonPlan struct {
	Title                string           `json:"title"`
	Location             string           `json:"location"`
	Character            string           `json:"character"`
	CharacterDescription string           `json:"characterDescription"`
	Scenario             string           `json:"scenario"`
	InitialDialogue      []DialogueLine   `json:"initialDialogue"`
	CulturalNote         CulturalNote     `json:"culturalNote"`
	Vocabulary           []VocabularyItem `json:"vocabulary,omitempty"`
	KeyPhrases           []KeyPhrase      `json:"keyPhrases,omitempty"`
	ImagePrompts         ImagePrompts     `json:"imagePrompts"`
	Context              string           `json:"context,omitempty"`
}

// GeneratedLesson is a LessonPlan with its rendered media attached.
type GeneratedLesson struct {
	LessonPlan
	HeaderImage    string `json:"headerImage"`
	CharacterImage string `json:"characterImage"`
}

// ChatTurn is one entry of the caller-owned conversation history. Role is
// "user" or "model"; Parts is the raw text of the turn.
type ChatTurn struct {
	Role  string `json:"role"`
	Parts string `json:"parts"`
}

// ChatReply is the next conversation turn produced for a learner utterance.
type ChatReply struct {
	NativeText      string `json:"nativeText"`
	EnglishText     string `json:"englishText"`
	UserTranslation string `json:"userTranslation"`
	NextImagePrompt string `json:"nextImagePrompt,omitempty"`
	NewImageURL     string `json:"newImageUrl,omitempty"`
}

// PhonemeIssue is one expected-vs-spoken word mismatch from a pronunciation
// attempt.
type PhonemeIssue struct {
	Phoneme        string `json:"phoneme"`
	UserPronounced string `json:"userPronounced"`
	Tip            string `json:"tip"`
}

// SpeechEvaluation is the result of scoring a recording against an expected
// phrase. Accuracy is 0-100 and computed locally from the transcript, not
// supplied by the speech provider.
type SpeechEvaluation struct {
	Transcript      string         `json:"transcript"`
	Phonemes        string         `json:"phonemes"`
	Accuracy        int            `json:"accuracy"`
	Issues          []PhonemeIssue `json:"issues"`
	ToneScore       int            `json:"toneScore,omitempty"`
	RhythmScore     int            `json:"rhythmScore,omitempty"`
	DialectFeedback string         `json:"dialectFeedback,omitempty"`
	Error           string         `json:"error,omitempty"`
}

// SpeechAudio is the result of a text-to-speech request. AudioData is
// base64-encoded MP3, empty when synthesis failed.
type SpeechAudio struct {
	AudioData string `json:"audioData"`
	Error     string `json:"error,omitempty"`
}
