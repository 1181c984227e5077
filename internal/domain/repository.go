package domain

import "context"

// SourceRepository provides the document that carries the question
// array literal.
type SourceRepository interface {
	// Document returns the full text of the source document.
	Document(ctx context.Context) (string, error)
}

// PageRepository provides line-level access to the destination quiz page.
type PageRepository interface {
	// Lines returns the page as an ordered line sequence. Line terminators
	// are preserved; a final line without a trailing newline stays that way.
	Lines(ctx context.Context) ([]string, error)

	// WriteLines replaces the whole page with the given line sequence.
	WriteLines(ctx context.Context, lines []string) error

	// Backup copies the current page aside and returns the backup path.
	Backup(ctx context.Context) (string, error)

	// Path returns the page's location, for diagnostics and summaries.
	Path() string
}
