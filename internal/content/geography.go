package content

var languageCountries = map[string]string{
	"Twi":     "Ghana",
	"Yoruba":  "Nigeria",
	"Igbo":    "Nigeria",
	"Hausa":   "Nigeria",
	"Swahili": "Kenya",
	"Zulu":    "South Africa",
	"Xhosa":   "South Africa",
	"Amharic": "Ethiopia",
	"Luganda": "Uganda",
	"Wolof":   "Senegal",
}

var languageCities = map[string]string{
	"Twi":     "Accra",
	"Yoruba":  "Lagos",
	"Igbo":    "Enugu",
	"Hausa":   "Kano",
	"Swahili": "Nairobi",
	"Zulu":    "Durban",
	"Xhosa":   "Cape Town",
	"Amharic": "Addis Ababa",
	"Luganda": "Kampala",
	"Wolof":   "Dakar",
}

// CountryForLanguage is total: unknown languages get a generic region so that
// placeholder substitution always has a value.
func CountryForLanguage(language string) string {
	if c, ok := languageCountries[language]; ok {
		return c
	}
	return "Africa"
}

func CityForLanguage(language string) string {
	if c, ok := languageCities[language]; ok {
		return c
	}
	return "the city"
}
