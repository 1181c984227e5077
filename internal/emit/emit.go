// Package emit renders questions as the single-line object literals the
// quiz page uses.
package emit

import (
	"strconv"
	"strings"

	"quiz-splice/internal/domain"
)

// indent matches the indentation of the page's question array entries.
const indent = "      "

// Line renders one question as a single-line literal, trailing comma
// included. Key order and spacing are fixed so inserted lines are
// indistinguishable from the hand-written ones around them.
func Line(q domain.Question) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("{ cat: ")
	writeString(&b, q.Category)
	b.WriteString(", q: ")
	writeString(&b, q.Prompt)
	b.WriteString(", options: ")
	writeOptions(&b, q.Options)
	b.WriteString(", answer: ")
	writeAnswer(&b, q.Answer)
	b.WriteString(", explain: ")
	writeString(&b, q.Explanation)
	b.WriteString(" },")
	return b.String()
}

// Block renders every question in order, one line per question.
func Block(questions []domain.Question) []string {
	lines := make([]string, 0, len(questions))
	for _, q := range questions {
		lines = append(lines, Line(q))
	}
	return lines
}

func writeOptions(b *strings.Builder, options []string) {
	b.WriteByte('[')
	for i, opt := range options {
		if i > 0 {
			b.WriteString(", ")
		}
		writeString(b, opt)
	}
	b.WriteByte(']')
}

// writeAnswer keeps the answer in its original shape: a bare index for
// single-answer questions, a bracketed list for multi-answer ones.
func writeAnswer(b *strings.Builder, a domain.Answer) {
	if !a.Multiple {
		if len(a.Indices) > 0 {
			b.WriteString(strconv.Itoa(a.Indices[0]))
		}
		return
	}
	b.WriteByte('[')
	for i, idx := range a.Indices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(idx))
	}
	b.WriteByte(']')
}

// writeString writes value double-quoted, escaping the characters that
// would break a single-line literal.
func writeString(b *strings.Builder, value string) {
	b.WriteByte('"')
	for _, c := range value {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
}
