// Package mocks provides mock implementations for testing callers of the
// generation use case.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
)

// MockGenerationUseCase is a mock implementation of GenerationUseCase for testing.
type MockGenerationUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of GenerationUseCase.
func (m *MockGenerationUseCase) Generate(
	ctx context.Context,
	req ticketDomain.GenerationRequest,
) (*ticketDomain.Run, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticketDomain.Run), args.Error(1)
}
