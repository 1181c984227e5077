package repository

import (
	"context"
	"os"

	"quiz-splice/internal/domain"
)

// SourceFileAdapter reads the question source document from a flat file.
type SourceFileAdapter struct {
	path string
}

// NewSourceFileAdapter creates a new instance of SourceFileAdapter.
func NewSourceFileAdapter(path string) domain.SourceRepository {
	return &SourceFileAdapter{path: path}
}

// Document returns the full source document.
func (r *SourceFileAdapter) Document(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", domain.NewSourceReadError(r.path, err)
	}
	return string(data), nil
}
