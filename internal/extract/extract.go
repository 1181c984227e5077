// Package extract locates named array literals inside text documents.
package extract

import (
	"regexp"

	"quiz-splice/internal/domain"
)

// ArrayBody returns the raw body of the array literal assigned to variable
// inside doc: everything between the "[" following "<variable> = [" and the
// next "]" that starts a line. The match is non-greedy and spans newlines,
// which fits arrays written one record block per line with the closing
// bracket on its own line.
func ArrayBody(doc, variable string) (string, error) {
	re := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(variable) + `\s*=\s*\[(.*?)\n\]`)
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return "", domain.NewArrayNotFoundError(variable)
	}
	return m[1], nil
}
