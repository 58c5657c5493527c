package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Finder is a mock implementation of finder.Finder
type Finder struct {
	mock.Mock
}

func (m *Finder) Pick(ctx context.Context, lines []string) (string, error) {
	args := m.Called(ctx, lines)
	return args.String(0), args.Error(1)
}
