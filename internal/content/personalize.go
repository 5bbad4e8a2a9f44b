package content

import "strings"

// PersonalizationContext carries the per-learner values substituted into
// template text.
type PersonalizationContext struct {
	Name     string
	Country  string
	City     string
	Language string
}

// Personalize replaces the literal ${name}, ${country}, ${city} and
// ${language} tokens. Text without tokens passes through untouched, so
// applying it twice is a no-op.
func Personalize(template string, pc PersonalizationContext) string {
	r := strings.NewReplacer(
		"${name}", pc.Name,
		"${country}", pc.Country,
		"${city}", pc.City,
		"${language}", pc.Language,
	)
	return r.Replace(template)
}
