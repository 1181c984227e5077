package validation

import (
	"strings"

	"quiz-splice/internal/domain"
)

// Validator provides question validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuestion validates the fields a question must carry before it
// can be rendered onto the page.
func (v *Validator) ValidateQuestion(q *domain.Question) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(q.Prompt) == "" {
		errors = append(errors, domain.NewMissingFieldError("q"))
	}
	if len(q.Options) == 0 {
		errors = append(errors, domain.NewMissingFieldError("options"))
	}
	if q.Answer.IsZero() {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	}

	return errors
}

// CheckAnswerBounds reports answer indices that do not address any option.
// Findings are advisory: a question with an out-of-range index still goes
// onto the page exactly as the source wrote it.
func (v *Validator) CheckAnswerBounds(q *domain.Question) domain.ValidationErrors {
	var errors domain.ValidationErrors

	for _, idx := range q.Answer.Indices {
		if idx < 0 || idx >= len(q.Options) {
			errors = append(errors, domain.NewOutOfRangeError("answer", idx, 0, len(q.Options)-1))
		}
	}

	return errors
}
