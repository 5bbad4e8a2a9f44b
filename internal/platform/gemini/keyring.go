package gemini

import (
	"math/rand/v2"
	"strings"
)

// Keyring holds the configured Gemini API keys. More than one key can be
// supplied comma-separated; each call picks one at random to spread quota
// across keys. The key set is immutable after construction.
type Keyring struct {
	keys []string
}

func NewKeyring(raw string) *Keyring {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return &Keyring{keys: keys}
}

func (k *Keyring) Configured() bool {
	return len(k.keys) > 0
}

func (k *Keyring) Size() int {
	return len(k.keys)
}

// Pick returns a uniformly random key, or "" when none are configured. No
// session affinity: consecutive calls may return different keys.
func (k *Keyring) Pick() string {
	if len(k.keys) == 0 {
		return ""
	}
	return k.keys[rand.IntN(len(k.keys))]
}
