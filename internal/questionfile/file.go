package questionfile

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/daxquiz/internal/quiz"
)

// document is the decoded form of a question file.
type document struct {
	Title     string         `json:"title,omitempty" yaml:"title,omitempty"`
	Intro     string         `json:"intro,omitempty" yaml:"intro,omitempty"`
	Questions []questionData `json:"questions" yaml:"questions"`
}

type questionData struct {
	ID           int      `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description,omitempty" yaml:"description,omitempty"`
	Options      []string `json:"options" yaml:"options"`
	Correct      int      `json:"correct" yaml:"correct"`
	Explanations []string `json:"explanations" yaml:"explanations"`
}

// Load reads a YAML or JSON question file and builds a validated set.
// Schema and invariant violations are reported as *quiz.MalformedQuestionError.
func Load(path string) (*quiz.QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes question file contents. JSON input is accepted because it
// is valid YAML.
func Parse(data []byte) (*quiz.QuestionSet, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &quiz.MalformedQuestionError{Problems: []string{"parse: " + err.Error()}}
	}

	// Normalize YAML values into JSON types for schema validation.
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, &quiz.MalformedQuestionError{Problems: []string{"convert: " + err.Error()}}
	}
	var parsed any
	if err := json.Unmarshal(jsonBytes, &parsed); err != nil {
		return nil, &quiz.MalformedQuestionError{Problems: []string{"convert: " + err.Error()}}
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile question schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &quiz.MalformedQuestionError{Problems: []string{"schema: " + err.Error()}}
	}

	var doc document
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return nil, &quiz.MalformedQuestionError{Problems: []string{"decode: " + err.Error()}}
	}

	questions := make([]quiz.Question, len(doc.Questions))
	for i, q := range doc.Questions {
		questions[i] = quiz.Question{
			ID:           q.ID,
			Title:        q.Title,
			Description:  q.Description,
			Options:      q.Options,
			Correct:      q.Correct,
			Explanations: q.Explanations,
		}
	}
	return quiz.NewQuestionSet(doc.Title, doc.Intro, questions)
}

// Encode renders a question set as YAML in the format Load accepts.
func Encode(set *quiz.QuestionSet) ([]byte, error) {
	doc := document{
		Title: set.Title(),
		Intro: set.Intro(),
	}
	for _, q := range set.All() {
		doc.Questions = append(doc.Questions, questionData{
			ID:           q.ID,
			Title:        q.Title,
			Description:  q.Description,
			Options:      q.Options,
			Correct:      q.Correct,
			Explanations: q.Explanations,
		})
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("encode question file: %w", err)
	}
	return out, nil
}
