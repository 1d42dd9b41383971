package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/simbirgo/rental-api/internal/core/domain"
	"github.com/simbirgo/rental-api/internal/core/ports"
)

// TransportService implements CRUD for rentable transports. Authorization is
// enforced by the router; the service itself carries no role logic.
type TransportService struct {
	repo   ports.TransportRepository
	logger zerolog.Logger
}

func NewTransportService(repo ports.TransportRepository, logger zerolog.Logger) *TransportService {
	return &TransportService{repo: repo, logger: logger}
}

func (s *TransportService) Get(ctx context.Context, id string) (*domain.Transport, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TransportService) Create(ctx context.Context, input ports.TransportInput) (*domain.Transport, error) {
	t := &domain.Transport{
		CanBeRented:   input.CanBeRented,
		TransportType: input.TransportType,
		Model:         deref(input.Model),
		Color:         deref(input.Color),
		Identifier:    deref(input.Identifier),
		Description:   deref(input.Description),
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		MinutePrice:   input.MinutePrice,
		DayPrice:      input.DayPrice,
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("transport_id", created.ID).Str("type", created.TransportType).Msg("transport created")
	return created, nil
}

// Update applies a partial update: absent string fields keep their stored
// value, while position and prices are always overwritten.
func (s *TransportService) Update(ctx context.Context, id string, input ports.TransportInput) (*domain.Transport, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.CanBeRented = input.CanBeRented
	if input.Model != nil {
		t.Model = *input.Model
	}
	if input.Color != nil {
		t.Color = *input.Color
	}
	if input.Identifier != nil {
		t.Identifier = *input.Identifier
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	t.Latitude = input.Latitude
	t.Longitude = input.Longitude
	t.MinutePrice = input.MinutePrice
	t.DayPrice = input.DayPrice

	return s.repo.Update(ctx, t)
}

func (s *TransportService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TransportService) List(ctx context.Context, filter ports.ListTransportsFilter) ([]*domain.Transport, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	return s.repo.List(ctx, filter)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
