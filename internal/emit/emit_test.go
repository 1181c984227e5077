package emit

import (
	"testing"

	"quiz-splice/internal/domain"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name     string
		question domain.Question
		want     string
	}{
		{
			name: "single answer",
			question: domain.Question{
				Category:    "VPC",
				Prompt:      "Which subnet hosts the NAT gateway?",
				Options:     []string{"public", "private"},
				Answer:      domain.NewSingleAnswer(0),
				Explanation: "NAT gateways live in public subnets",
			},
			want: `      { cat: "VPC", q: "Which subnet hosts the NAT gateway?", options: ["public", "private"], answer: 0, explain: "NAT gateways live in public subnets" },`,
		},
		{
			name: "multiple answers keep list form",
			question: domain.Question{
				Category:    "S3",
				Prompt:      "Pick two storage classes",
				Options:     []string{"Standard", "Glacier", "EBS"},
				Answer:      domain.NewMultipleAnswer(0, 1),
				Explanation: "EBS is block storage",
			},
			want: `      { cat: "S3", q: "Pick two storage classes", options: ["Standard", "Glacier", "EBS"], answer: [0, 1], explain: "EBS is block storage" },`,
		},
		{
			name: "quotes escaped exactly once",
			question: domain.Question{
				Category:    "CLI",
				Prompt:      `Use "aws s3 cp" to copy?`,
				Options:     []string{`say "yes"`, "no"},
				Answer:      domain.NewSingleAnswer(0),
				Explanation: `the "cp" subcommand copies objects`,
			},
			want: `      { cat: "CLI", q: "Use \"aws s3 cp\" to copy?", options: ["say \"yes\"", "no"], answer: 0, explain: "the \"cp\" subcommand copies objects" },`,
		},
		{
			name: "backslashes and control characters escaped",
			question: domain.Question{
				Category:    "Paths",
				Prompt:      `Where does C:\aws live?`,
				Options:     []string{"nowhere"},
				Answer:      domain.NewSingleAnswer(0),
				Explanation: "line one\nline two\ttabbed",
			},
			want: `      { cat: "Paths", q: "Where does C:\\aws live?", options: ["nowhere"], answer: 0, explain: "line one\nline two\ttabbed" },`,
		},
		{
			name: "empty category and explanation",
			question: domain.Question{
				Prompt:  "Bare question?",
				Options: []string{"a"},
				Answer:  domain.NewSingleAnswer(0),
			},
			want: `      { cat: "", q: "Bare question?", options: ["a"], answer: 0, explain: "" },`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.question)
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBlock(t *testing.T) {
	questions := []domain.Question{
		{
			Category: "A",
			Prompt:   "First?",
			Options:  []string{"x"},
			Answer:   domain.NewSingleAnswer(0),
		},
		{
			Category: "B",
			Prompt:   "Second?",
			Options:  []string{"y", "z"},
			Answer:   domain.NewMultipleAnswer(0, 1),
		},
	}

	lines := Block(questions)
	if len(lines) != 2 {
		t.Fatalf("Block() returned %d lines, want 2", len(lines))
	}
	if lines[0] != Line(questions[0]) {
		t.Errorf("Block()[0] = %q, want %q", lines[0], Line(questions[0]))
	}
	if lines[1] != Line(questions[1]) {
		t.Errorf("Block()[1] = %q, want %q", lines[1], Line(questions[1]))
	}
}

func TestBlock_Empty(t *testing.T) {
	if lines := Block(nil); len(lines) != 0 {
		t.Errorf("Block(nil) returned %d lines, want 0", len(lines))
	}
}
