package mocks

import (
	"context"

	"github.com/bioskopid/bioskop-api/internal/domain"
)

type MockBookingService struct {
	SubmitFunc func(ctx context.Context, req domain.BookingRequest) (*domain.BookingResult, error)
}

func (m *MockBookingService) Submit(ctx context.Context, req domain.BookingRequest) (*domain.BookingResult, error) {
	return m.SubmitFunc(ctx, req)
}
