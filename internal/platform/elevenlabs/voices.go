package elevenlabs

import "strings"

// dialectVoices maps language -> dialect -> ElevenLabs voice id. These are
// stock library voices standing in until cloned dialect voices are recorded.
var dialectVoices = map[string]map[string]string{
	"yoruba": {
		"default":  "9Dbo4hEvXQ5l7MXGZFQA",
		"lagos":    "ErXwobaYiN019PkySvjV",
		"ibadan":   "EXAVITQu4vr4xnSDxMaL",
		"abeokuta": "TxGEqnHWrfWFTfGW9XjX",
	},
	"twi": {
		"default": "21m00Tcm4TlvDq8ikWAM",
		"asante":  "21m00Tcm4TlvDq8ikWAM",
		"akuapem": "AZnzlk1XvdvUeBnXmlld",
	},
	"swahili": {
		"default":   "kgG7dCoKCfLehAPWkJOE",
		"kenyan":    "kgG7dCoKCfLehAPWkJOE",
		"tanzanian": "MF3mGyEYCl7XYWbV9V6O",
	},
}

// fallbackVoice is the global last resort when the language is unknown.
const fallbackVoice = "9Dbo4hEvXQ5l7MXGZFQA"

// ResolveVoice picks the voice id for a language/dialect pair: exact dialect
// match, then the language's default voice, then the global fallback. Always
// returns a usable id.
func ResolveVoice(language, dialect string) string {
	langKey := strings.ToLower(strings.TrimSpace(language))
	dialectKey := strings.ToLower(strings.TrimSpace(dialect))
	if dialectKey == "" {
		dialectKey = "default"
	}

	voices, ok := dialectVoices[langKey]
	if !ok {
		return fallbackVoice
	}
	if id, ok := voices[dialectKey]; ok {
		return id
	}
	if id, ok := voices["default"]; ok {
		return id
	}
	return fallbackVoice
}

// transcriptionCodes maps language names to the ISO codes the speech-to-text
// endpoint accepts as a transcription hint.
var transcriptionCodes = map[string]string{
	"yoruba":  "yo",
	"twi":     "tw",
	"swahili": "sw",
	"igbo":    "ig",
	"hausa":   "ha",
	"zulu":    "zu",
	"amharic": "am",
	"english": "en",
}

func TranscriptionCode(language string) string {
	if code, ok := transcriptionCodes[strings.ToLower(strings.TrimSpace(language))]; ok {
		return code
	}
	return "en"
}
