// Package parser turns the body of a question array literal into domain
// questions. Fragments that cannot be parsed are logged and skipped so a
// single malformed record never aborts the whole batch.
package parser

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"quiz-splice/internal/domain"
)

// maxFragmentDiagnostic caps how much of a malformed fragment lands in the
// log entry.
const maxFragmentDiagnostic = 200

// Records parses every record fragment in body, preserving input order.
// A fragment that fails to normalize, decode, or validate is logged with
// its 1-based position and skipped; the second return value is the number
// of fragments skipped this way.
func Records(body string, log *zap.Logger) ([]domain.Question, int) {
	frags := fragments(body)
	questions := make([]domain.Question, 0, len(frags))
	skipped := 0
	for i, frag := range frags {
		q, err := Record(frag)
		if err != nil {
			skipped++
			log.Error("Failed to parse question record",
				zap.Error(domain.NewInvalidRecordError(i+1, err)),
				zap.String("fragment", truncate(frag, maxFragmentDiagnostic)))
			continue
		}
		questions = append(questions, *q)
	}
	return questions, skipped
}

// Record parses a single {...} fragment into a question.
func Record(fragment string) (*domain.Question, error) {
	normalized, err := normalizeFragment(strings.TrimSpace(fragment))
	if err != nil {
		return nil, err
	}
	var q domain.Question
	if err := json.Unmarshal([]byte(normalized), &q); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return &q, nil
}

// fragments splits an array body into its top-level brace-delimited record
// fragments. The scan tracks quoted strings so braces inside question text
// do not affect nesting. A fragment left unterminated at the end of the
// body is still returned; the decode step rejects and reports it.
func fragments(body string) []string {
	var (
		out     []string
		depth   int
		start   int
		inStr   bool
		quote   rune
		escaped bool
	)
	for i, c := range body {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				inStr = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inStr = true
			quote = c
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					out = append(out, body[start:i+1])
				}
			}
		}
	}
	if depth > 0 {
		out = append(out, body[start:])
	}
	return out
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
