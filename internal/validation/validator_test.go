package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-splice/internal/domain"
)

func TestValidator_ValidateQuestion(t *testing.T) {
	v := NewValidator()

	t.Run("complete question passes", func(t *testing.T) {
		q := domain.NewQuestion("VPC", "Which?", []string{"a", "b"}, domain.NewSingleAnswer(0), "")
		assert.Empty(t, v.ValidateQuestion(q))
	})

	t.Run("missing prompt", func(t *testing.T) {
		q := domain.NewQuestion("VPC", "  ", []string{"a"}, domain.NewSingleAnswer(0), "")
		errs := v.ValidateQuestion(q)
		require.Len(t, errs, 1)
		assert.Contains(t, errs.Error(), "q is required")
	})

	t.Run("no options", func(t *testing.T) {
		q := domain.NewQuestion("VPC", "Which?", nil, domain.NewSingleAnswer(0), "")
		errs := v.ValidateQuestion(q)
		require.Len(t, errs, 1)
		assert.Contains(t, errs.Error(), "options is required")
	})

	t.Run("zero answer", func(t *testing.T) {
		q := domain.NewQuestion("VPC", "Which?", []string{"a"}, domain.Answer{}, "")
		errs := v.ValidateQuestion(q)
		require.Len(t, errs, 1)
		assert.Contains(t, errs.Error(), "answer is required")
	})

	t.Run("all fields missing reports each", func(t *testing.T) {
		errs := v.ValidateQuestion(&domain.Question{})
		assert.Len(t, errs, 3)
	})
}

func TestValidator_CheckAnswerBounds(t *testing.T) {
	v := NewValidator()

	t.Run("indices in range", func(t *testing.T) {
		q := domain.NewQuestion("", "Q?", []string{"a", "b", "c"}, domain.NewMultipleAnswer(0, 2), "")
		assert.Empty(t, v.CheckAnswerBounds(q))
	})

	t.Run("index past last option", func(t *testing.T) {
		q := domain.NewQuestion("", "Q?", []string{"a", "b"}, domain.NewSingleAnswer(2), "")
		errs := v.CheckAnswerBounds(q)
		require.Len(t, errs, 1)
		assert.Contains(t, errs.Error(), "out of range")
	})

	t.Run("only offending indices reported", func(t *testing.T) {
		q := domain.NewQuestion("", "Q?", []string{"a", "b"}, domain.NewMultipleAnswer(0, 5), "")
		assert.Len(t, v.CheckAnswerBounds(q), 1)
	})
}
