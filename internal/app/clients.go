package app

import (
	"github.com/sankofalabs/sankofa-backend/internal/platform/elevenlabs"
	"github.com/sankofalabs/sankofa-backend/internal/platform/gemini"
	"github.com/sankofalabs/sankofa-backend/internal/platform/images"
	"github.com/sankofalabs/sankofa-backend/internal/platform/logger"
	"github.com/sankofalabs/sankofa-backend/internal/platform/translate"
)

type Clients struct {
	Keyring    *gemini.Keyring
	Gemini     gemini.Client
	Translate  translate.Translator
	ElevenLabs elevenlabs.Client
	Images     images.Generator
}

// wireClients builds every outbound platform client. Missing credentials do
// not fail startup: each client reports its own not-configured state and the
// services degrade through their fallback rungs.
func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring platform clients...")
	keyring := gemini.NewKeyring(cfg.GeminiAPIKeys)
	if !keyring.Configured() {
		log.Warn("GEMINI_API_KEY not set, generation will serve fallbacks")
	}
	if cfg.ElevenLabsAPIKey == "" {
		log.Warn("ELEVENLABS_API_KEY not set, speech features will report errors")
	}
	return Clients{
		Keyring:    keyring,
		Gemini:     gemini.NewClient(log, keyring),
		Translate:  translate.NewClient(log),
		ElevenLabs: elevenlabs.NewClient(log, cfg.ElevenLabsAPIKey),
		Images:     images.NewGenerator(log, keyring),
	}
}
