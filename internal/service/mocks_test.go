package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// --- MockSourceRepository ---
type MockSourceRepository struct {
	mock.Mock
}

func (m *MockSourceRepository) Document(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// --- MockPageRepository ---
type MockPageRepository struct {
	mock.Mock
}

func (m *MockPageRepository) Lines(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPageRepository) WriteLines(ctx context.Context, lines []string) error {
	args := m.Called(ctx, lines)
	return args.Error(0)
}

func (m *MockPageRepository) Backup(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPageRepository) Path() string {
	args := m.Called()
	return args.String(0)
}
