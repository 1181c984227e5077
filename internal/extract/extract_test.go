package extract

import (
	"errors"
	"testing"

	"quiz-splice/internal/domain"
)

func TestArrayBody(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		variable string
		want     string
		wantErr  bool
	}{
		{
			name:     "body between brackets",
			doc:      "# batch five\ntest5_questions = [\n  { q: \"hi\" },\n]\n",
			variable: "test5_questions",
			want:     "\n  { q: \"hi\" },",
		},
		{
			name:     "nested answer lists do not end the body",
			doc:      "test5_questions = [\n  { answer: [0, 1] },\n  { answer: 2 },\n]",
			variable: "test5_questions",
			want:     "\n  { answer: [0, 1] },\n  { answer: 2 },",
		},
		{
			name:     "spacing around assignment tolerated",
			doc:      "test5_questions   =   [\n  { q: 1 },\n]",
			variable: "test5_questions",
			want:     "\n  { q: 1 },",
		},
		{
			name:     "empty array",
			doc:      "test5_questions = [\n]",
			variable: "test5_questions",
			want:     "",
		},
		{
			name:     "first matching array wins",
			doc:      "test5_questions = [\n  { q: 1 },\n]\ntest5_questions = [\n  { q: 2 },\n]\n",
			variable: "test5_questions",
			want:     "\n  { q: 1 },",
		},
		{
			name:     "variable absent",
			doc:      "other_questions = [\n  { q: 1 },\n]",
			variable: "test5_questions",
			wantErr:  true,
		},
		{
			name:     "closing bracket must start a line",
			doc:      "test5_questions = [\n  { q: 1 },\n  ]\n",
			variable: "test5_questions",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArrayBody(tt.doc, tt.variable)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ArrayBody() = %q, want error", got)
				}
				var derr *domain.DomainError
				if !errors.As(err, &derr) || derr.Code != domain.ErrArrayNotFound {
					t.Errorf("ArrayBody() error = %v, want code %s", err, domain.ErrArrayNotFound)
				}
				return
			}
			if err != nil {
				t.Fatalf("ArrayBody() returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ArrayBody() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArrayBody_SelectsRequestedVariable(t *testing.T) {
	doc := "test4_questions = [\n  { q: 4 },\n]\ntest5_questions = [\n  { q: 5 },\n]\n"

	got, err := ArrayBody(doc, "test5_questions")
	if err != nil {
		t.Fatalf("ArrayBody() returned error: %v", err)
	}
	if want := "\n  { q: 5 },"; got != want {
		t.Errorf("ArrayBody() = %q, want %q", got, want)
	}
}
