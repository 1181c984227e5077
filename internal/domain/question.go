package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Question represents one quiz question lifted from the source document.
// Instances are transient: parsed, re-emitted into the page, then discarded.
// Identity is positional (the record's index in parse order); there is no key.
type Question struct {
	Category    string   `json:"cat"`
	Prompt      string   `json:"q"`
	Options     []string `json:"options"`
	Answer      Answer   `json:"answer"`
	Explanation string   `json:"explain"`
}

// NewQuestion creates a new Question instance
func NewQuestion(category, prompt string, options []string, answer Answer, explanation string) *Question {
	return &Question{
		Category:    category,
		Prompt:      prompt,
		Options:     options,
		Answer:      answer,
		Explanation: explanation,
	}
}

// Validate checks that the fields the page format requires are present.
// Category and Explanation may be empty; they re-emit as empty strings.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return NewValidationError("question text is required")
	}
	if len(q.Options) == 0 {
		return NewValidationError("at least one option is required")
	}
	if q.Answer.IsZero() {
		return NewValidationError("answer is required")
	}
	return nil
}

// Answer holds either a single zero-based option index or an ordered
// sequence of indices for multiple-correct questions. Which form was
// parsed is preserved so the record re-emits in its original shape.
type Answer struct {
	Indices  []int
	Multiple bool
}

// NewSingleAnswer creates an Answer carrying one correct option index
func NewSingleAnswer(index int) Answer {
	return Answer{Indices: []int{index}}
}

// NewMultipleAnswer creates an Answer carrying an ordered index list
func NewMultipleAnswer(indices ...int) Answer {
	return Answer{Indices: indices, Multiple: true}
}

// IsZero reports whether the answer was never populated
func (a Answer) IsZero() bool {
	return len(a.Indices) == 0
}

// UnmarshalJSON accepts either a bare integer or an array of integers.
// Anything else (strings, floats, null, empty lists) is a decode error,
// which the parser turns into a per-record skip.
func (a *Answer) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return fmt.Errorf("answer must be an option index or a list of indices")
	}

	if trimmed[0] == '[' {
		var indices []int
		if err := json.Unmarshal(trimmed, &indices); err != nil {
			return fmt.Errorf("answer list: %w", err)
		}
		if len(indices) == 0 {
			return fmt.Errorf("answer list is empty")
		}
		for _, idx := range indices {
			if idx < 0 {
				return fmt.Errorf("answer index %d is negative", idx)
			}
		}
		a.Indices = indices
		a.Multiple = true
		return nil
	}

	var index int
	if err := json.Unmarshal(trimmed, &index); err != nil {
		return fmt.Errorf("answer: %w", err)
	}
	if index < 0 {
		return fmt.Errorf("answer index %d is negative", index)
	}
	a.Indices = []int{index}
	a.Multiple = false
	return nil
}

// MarshalJSON reproduces the form the answer was parsed from: a bare
// numeral for single answers, an array for multiple answers.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsZero() {
		return nil, fmt.Errorf("answer has no indices")
	}
	if a.Multiple {
		return json.Marshal(a.Indices)
	}
	return json.Marshal(a.Indices[0])
}
