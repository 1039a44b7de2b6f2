// Package questionnaire models the self-reported compliance side of the
// dashboard: the fixed 20-question catalog, answer scoring, category
// breakdowns, and remediation recommendations.
package questionnaire

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// QuestionCount is the fixed size of the questionnaire.
const QuestionCount = 20

// MaxRawTotal is the highest achievable raw score (every question answered Yes).
const MaxRawTotal = QuestionCount * int(AnswerYes)

// Question is one entry of the fixed catalog.
type Question struct {
	ID       int    `yaml:"id" json:"id"`
	Text     string `yaml:"text" json:"text"`
	Category string `yaml:"category" json:"category"`
}

//go:embed questions.yaml
var catalogYAML []byte

type catalog struct {
	Categories []string   `yaml:"categories"`
	Questions  []Question `yaml:"questions"`
}

var loadedCatalog = mustLoadCatalog()

// mustLoadCatalog parses the embedded catalog. The catalog is compile-time
// data, so any inconsistency is a programming error worth failing fast on.
func mustLoadCatalog() catalog {
	var c catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		panic(fmt.Sprintf("questionnaire: invalid embedded catalog: %v", err))
	}
	if len(c.Questions) != QuestionCount {
		panic(fmt.Sprintf("questionnaire: catalog has %d questions, want %d", len(c.Questions), QuestionCount))
	}

	known := make(map[string]bool, len(c.Categories))
	for _, name := range c.Categories {
		known[name] = true
	}
	seen := make(map[int]bool, len(c.Questions))
	for _, q := range c.Questions {
		if q.ID < 1 || q.ID > QuestionCount || seen[q.ID] {
			panic(fmt.Sprintf("questionnaire: bad question id %d", q.ID))
		}
		seen[q.ID] = true
		if !known[q.Category] {
			panic(fmt.Sprintf("questionnaire: question %d references unknown category %q", q.ID, q.Category))
		}
	}
	return c
}

// Questions returns the full catalog in question-id order.
func Questions() []Question {
	return loadedCatalog.Questions
}

// Categories returns the nine breakdown categories in presentation order.
func Categories() []string {
	return loadedCatalog.Categories
}

// QuestionByID looks a question up by its 1-based id.
func QuestionByID(id int) (Question, bool) {
	for _, q := range loadedCatalog.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
