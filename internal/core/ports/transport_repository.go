package ports

import (
	"context"

	"github.com/simbirgo/rental-api/internal/core/domain"
)

// ListTransportsFilter carries query parameters for the admin transport list.
type ListTransportsFilter struct {
	Skip  int
	Count int
	// TransportType filters by vehicle type, case-insensitive. Empty = all.
	TransportType string
}

// TransportRepository defines persistence operations for transports.
type TransportRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Transport, error)
	Create(ctx context.Context, t *domain.Transport) (*domain.Transport, error)
	Update(ctx context.Context, t *domain.Transport) (*domain.Transport, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListTransportsFilter) ([]*domain.Transport, error)
}
