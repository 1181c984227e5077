package repository

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"quiz-splice/internal/domain"
	"quiz-splice/internal/util"
)

// PageFileAdapter reads and rewrites the quiz page as a line sequence.
// Lines keep their newline terminators so a rewrite reproduces untouched
// regions byte for byte.
type PageFileAdapter struct {
	path string
}

// NewPageFileAdapter creates a new instance of PageFileAdapter.
func NewPageFileAdapter(path string) domain.PageRepository {
	return &PageFileAdapter{path: path}
}

// Lines returns the page content split into terminator-preserving lines.
func (r *PageFileAdapter) Lines(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, domain.NewPageReadError(r.path, err)
	}
	lines := strings.SplitAfter(string(data), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// WriteLines replaces the page content. The write goes to a temporary file
// in the page's directory and moves into place with a rename, so a failure
// partway cannot leave a truncated page behind.
func (r *PageFileAdapter) WriteLines(ctx context.Context, lines []string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(r.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*")
	if err != nil {
		return domain.NewPageWriteError(r.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strings.Join(lines, "")); err != nil {
		tmp.Close()
		return domain.NewPageWriteError(r.path, err)
	}
	if err := tmp.Close(); err != nil {
		return domain.NewPageWriteError(r.path, err)
	}
	if err := os.Chmod(tmp.Name(), mode); err != nil {
		return domain.NewPageWriteError(r.path, err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return domain.NewPageWriteError(r.path, err)
	}
	return nil
}

// Backup copies the current page next to itself under a ULID-suffixed name
// and returns the copy's path.
func (r *PageFileAdapter) Backup(ctx context.Context) (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", domain.NewPageReadError(r.path, err)
	}
	backupPath := r.path + "." + util.NewULID() + ".bak"
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", domain.NewPageWriteError(backupPath, err)
	}
	return backupPath, nil
}

// Path returns the page's location on disk.
func (r *PageFileAdapter) Path() string {
	return r.path
}
