package content

import "testing"

func testContext() PersonalizationContext {
	return PersonalizationContext{
		Name:     "Ama",
		Country:  "Ghana",
		City:     "Accra",
		Language: "Twi",
	}
}

func TestPersonalize(t *testing.T) {
	got := Personalize("${name} arrives in ${country} to learn ${language}.", testContext())
	want := "Ama arrives in Ghana to learn Twi."
	if got != want {
		t.Fatalf("Personalize=%q, want %q", got, want)
	}
}

func TestPersonalizeNoTokensUnchanged(t *testing.T) {
	in := "A plain sentence with no tokens."
	if got := Personalize(in, testContext()); got != in {
		t.Fatalf("text without tokens changed: %q", got)
	}
}

func TestPersonalizeIdempotent(t *testing.T) {
	once := Personalize("${name} visits ${city}.", testContext())
	twice := Personalize(once, testContext())
	if once != twice {
		t.Fatalf("double substitution altered text: %q vs %q", once, twice)
	}
}

func TestGeographyLookupsAreTotal(t *testing.T) {
	if got := CountryForLanguage("Twi"); got != "Ghana" {
		t.Fatalf("CountryForLanguage(Twi)=%q", got)
	}
	if got := CountryForLanguage("Klingon"); got != "Africa" {
		t.Fatalf("CountryForLanguage(unknown)=%q, want Africa default", got)
	}
	if got := CityForLanguage("Yoruba"); got != "Lagos" {
		t.Fatalf("CityForLanguage(Yoruba)=%q", got)
	}
	if got := CityForLanguage("Klingon"); got != "the city" {
		t.Fatalf("CityForLanguage(unknown)=%q, want generic default", got)
	}
}

func TestStoreLoadsEmbeddedTemplates(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	travel, ok := s.Curriculum("travel")
	if !ok {
		t.Fatal("travel curriculum missing")
	}
	if len(travel.Lessons) != 3 {
		t.Fatalf("travel curriculum has %d lessons, want 3", len(travel.Lessons))
	}

	business, ok := s.Curriculum("business")
	if !ok {
		t.Fatal("business curriculum missing")
	}
	if len(business.Lessons) != 3 {
		t.Fatalf("business curriculum has %d lessons, want 3", len(business.Lessons))
	}
}

func TestStoreLessonLookupByIDAndScenario(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}

	byID, ok := s.Lesson("travel_1_greetings")
	if !ok {
		t.Fatal("lookup by id failed")
	}
	byScenario, ok := s.Lesson("airport_arrival")
	if !ok {
		t.Fatal("lookup by scenario slug failed")
	}
	if byID.ID != byScenario.ID {
		t.Fatalf("id lookup and scenario lookup disagree: %q vs %q", byID.ID, byScenario.ID)
	}

	if _, ok := s.Lesson("no_such_scenario"); ok {
		t.Fatal("unknown key reported a template")
	}
}

func TestStorePersonasResolve(t *testing.T) {
	s, err := NewStore()
	if err != nil {
		t.Fatal(err)
	}
	lesson, _ := s.Lesson("market_negotiation")
	persona, ok := s.Persona(lesson.PersonaID)
	if !ok {
		t.Fatalf("persona %q for lesson %q missing", lesson.PersonaID, lesson.ID)
	}
	if persona.Role == "" || persona.BaseOpeningLine == "" {
		t.Fatalf("persona %q incomplete: %+v", persona.ID, persona)
	}
}
