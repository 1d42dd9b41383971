package ports

import (
	"context"

	"github.com/simbirgo/rental-api/internal/core/domain"
)

// TransportInput carries the request payload for creating or updating a transport.
// Pointer string fields distinguish "absent" (keep old value on update) from
// an explicit empty string; numeric fields are always applied.
type TransportInput struct {
	CanBeRented   bool
	TransportType string
	Model         *string
	Color         *string
	Identifier    *string
	Description   *string
	Latitude      float64
	Longitude     float64
	MinutePrice   *float64
	DayPrice      *float64
}

// TransportService defines use-case operations for transports.
type TransportService interface {
	Get(ctx context.Context, id string) (*domain.Transport, error)
	Create(ctx context.Context, input TransportInput) (*domain.Transport, error)
	Update(ctx context.Context, id string, input TransportInput) (*domain.Transport, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListTransportsFilter) ([]*domain.Transport, error)
}
