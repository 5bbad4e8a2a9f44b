// Package content holds the static, language-agnostic scenario definitions:
// curricula, lesson templates and personas. Content is authored as YAML and
// embedded; English concepts in templates are localized at compose time.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

type PersonaTemplate struct {
	ID              string `yaml:"-"`
	Role            string `yaml:"role"`
	Personality     string `yaml:"personality"`
	SpeakingStyle   string `yaml:"speaking_style"`
	BaseOpeningLine string `yaml:"base_opening_line"`
}

type KeyPhraseConcept struct {
	Concept string `yaml:"concept"`
	Purpose string `yaml:"purpose"`
}

// LessonTemplate is a pre-authored scenario. Text fields may carry ${name},
// ${country}, ${city} and ${language} placeholders resolved per learner.
type LessonTemplate struct {
	ID                 string             `yaml:"-"`
	Title              string             `yaml:"title"`
	Description        string             `yaml:"description"`
	Scenario           string             `yaml:"scenario"`
	ImagePrompt        string             `yaml:"image_prompt"`
	Vocabulary         []string           `yaml:"vocabulary"`
	KeyPhrases         []KeyPhraseConcept `yaml:"key_phrases"`
	CulturalNoteTopics []string           `yaml:"cultural_note_topics"`
	PersonaID          string             `yaml:"persona_id"`
	OpeningLine        string             `yaml:"opening_line"`
}

type CurriculumTemplate struct {
	ID          string   `yaml:"-"`
	Name        string   `yaml:"name"`
	Goal        string   `yaml:"goal"`
	Description string   `yaml:"description"`
	Lessons     []string `yaml:"lessons"`
}

// Store is the read-only template registry, parsed once at startup.
type Store struct {
	personas  map[string]PersonaTemplate
	lessons   map[string]LessonTemplate
	curricula map[string]CurriculumTemplate
}

// NewStore parses the embedded template set.
func NewStore() (*Store, error) {
	return NewStoreFromYAML(templatesYAML)
}

// NewStoreFromYAML parses an alternate template document, validating that
// every persona and lesson reference resolves.
func NewStoreFromYAML(doc []byte) (*Store, error) {
	var raw struct {
		Personas  map[string]PersonaTemplate    `yaml:"personas"`
		Lessons   map[string]LessonTemplate     `yaml:"lessons"`
		Curricula map[string]CurriculumTemplate `yaml:"curricula"`
	}
	if err := yaml.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Store{
		personas:  make(map[string]PersonaTemplate, len(raw.Personas)),
		lessons:   make(map[string]LessonTemplate, len(raw.Lessons)),
		curricula: make(map[string]CurriculumTemplate, len(raw.Curricula)),
	}
	for id, p := range raw.Personas {
		p.ID = id
		s.personas[id] = p
	}
	for id, l := range raw.Lessons {
		l.ID = id
		if _, ok := raw.Personas[l.PersonaID]; !ok {
			return nil, fmt.Errorf("lesson %q references unknown persona %q", id, l.PersonaID)
		}
		s.lessons[id] = l
	}
	for id, c := range raw.Curricula {
		c.ID = id
		for _, lessonID := range c.Lessons {
			if _, ok := raw.Lessons[lessonID]; !ok {
				return nil, fmt.Errorf("curriculum %q references unknown lesson %q", id, lessonID)
			}
		}
		s.curricula[id] = c
	}
	return s, nil
}

func (s *Store) Persona(id string) (PersonaTemplate, bool) {
	p, ok := s.personas[id]
	return p, ok
}

// Lesson resolves a template by id, then by scenario slug. Curriculum topics
// carry the scenario slug as their context key, so both spellings must work.
func (s *Store) Lesson(key string) (LessonTemplate, bool) {
	if l, ok := s.lessons[key]; ok {
		return l, true
	}
	for _, l := range s.lessons {
		if l.Scenario == key {
			return l, true
		}
	}
	return LessonTemplate{}, false
}

func (s *Store) Curriculum(id string) (CurriculumTemplate, bool) {
	c, ok := s.curricula[id]
	return c, ok
}
