package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simbirgo/rental-api/internal/core/domain"
	"github.com/simbirgo/rental-api/internal/core/ports"
)

type stubTransportRepo struct {
	seq        int
	transports map[string]*domain.Transport
}

func newStubTransportRepo() *stubTransportRepo {
	return &stubTransportRepo{transports: make(map[string]*domain.Transport)}
}

func (r *stubTransportRepo) FindByID(_ context.Context, id string) (*domain.Transport, error) {
	t, ok := r.transports[id]
	if !ok {
		return nil, domain.ErrTransportNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTransportRepo) Create(_ context.Context, t *domain.Transport) (*domain.Transport, error) {
	r.seq++
	clone := *t
	clone.ID = strconv.Itoa(r.seq)
	r.transports[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTransportRepo) Update(_ context.Context, t *domain.Transport) (*domain.Transport, error) {
	if _, ok := r.transports[t.ID]; !ok {
		return nil, domain.ErrTransportNotFound
	}
	clone := *t
	r.transports[t.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTransportRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.transports[id]; !ok {
		return domain.ErrTransportNotFound
	}
	delete(r.transports, id)
	return nil
}

func (r *stubTransportRepo) List(_ context.Context, filter ports.ListTransportsFilter) ([]*domain.Transport, error) {
	var out []*domain.Transport
	for i := 1; i <= r.seq; i++ {
		if t, ok := r.transports[strconv.Itoa(i)]; ok {
			clone := *t
			out = append(out, &clone)
		}
	}
	if filter.Skip > len(out) {
		filter.Skip = len(out)
	}
	out = out[filter.Skip:]
	if filter.Count > 0 && filter.Count < len(out) {
		out = out[:filter.Count]
	}
	return out, nil
}

func strptr(s string) *string { return &s }

func f64ptr(f float64) *float64 { return &f }

func TestTransportService_PartialUpdate(t *testing.T) {
	repo := newStubTransportRepo()
	svc := NewTransportService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.TransportInput{
		CanBeRented:   true,
		TransportType: "car",
		Model:         strptr("hatchback"),
		Color:         strptr("blue"),
		Identifier:    strptr("A123BC"),
		Latitude:      54.3,
		Longitude:     48.4,
		MinutePrice:   f64ptr(2.5),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Absent string fields keep their stored values; position and prices
	// are always overwritten.
	updated, err := svc.Update(ctx, created.ID, ports.TransportInput{
		CanBeRented:   false,
		TransportType: "car",
		Color:         strptr("red"),
		Latitude:      55.0,
		Longitude:     49.0,
		DayPrice:      f64ptr(900),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Model != "hatchback" {
		t.Fatalf("model overwritten: %q", updated.Model)
	}
	if updated.Color != "red" {
		t.Fatalf("color = %q, want red", updated.Color)
	}
	if updated.Identifier != "A123BC" {
		t.Fatalf("identifier overwritten: %q", updated.Identifier)
	}
	if updated.CanBeRented {
		t.Fatalf("can_be_rented should be false")
	}
	if updated.MinutePrice != nil {
		t.Fatalf("minute price should have been cleared, got %v", *updated.MinutePrice)
	}
	if updated.DayPrice == nil || *updated.DayPrice != 900 {
		t.Fatalf("unexpected day price: %v", updated.DayPrice)
	}
	if updated.Latitude != 55.0 || updated.Longitude != 49.0 {
		t.Fatalf("position not overwritten: %f,%f", updated.Latitude, updated.Longitude)
	}
}

func TestTransportService_GetMissing(t *testing.T) {
	svc := NewTransportService(newStubTransportRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "42"); !errors.Is(err, domain.ErrTransportNotFound) {
		t.Fatalf("expected ErrTransportNotFound, got %v", err)
	}
}

func TestTransportService_DeleteMissing(t *testing.T) {
	svc := NewTransportService(newStubTransportRepo(), zerolog.Nop())

	if err := svc.Delete(context.Background(), "42"); !errors.Is(err, domain.ErrTransportNotFound) {
		t.Fatalf("expected ErrTransportNotFound, got %v", err)
	}
}
