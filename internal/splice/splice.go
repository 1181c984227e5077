// Package splice inserts rendered lines into a page's line sequence.
package splice

import (
	"strings"

	"quiz-splice/internal/domain"
)

// MarkerIndex returns the index of the first line whose trimmed content
// equals marker. Matching on trimmed content keeps the lookup stable when
// the page's indentation shifts.
func MarkerIndex(lines []string, marker string) (int, error) {
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			return i, nil
		}
	}
	return 0, domain.NewMarkerNotFoundError(marker)
}

// InsertBefore returns a new line slice with block inserted ahead of the
// line at index. Block lines gain the newline terminator the page line
// model carries. The input slice is left untouched; index may equal
// len(lines) to append at the end.
func InsertBefore(lines []string, index int, block []string) ([]string, error) {
	if index < 0 || index > len(lines) {
		return nil, domain.NewInsertLineError(index, len(lines))
	}
	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:index]...)
	for _, line := range block {
		out = append(out, line+"\n")
	}
	out = append(out, lines[index:]...)
	return out, nil
}
