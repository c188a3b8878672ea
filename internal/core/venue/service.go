// Copyright (c) 2026 Marquee. All rights reserved.

package venue

import (
	"context"
	"log/slog"
	"time"

	"github.com/marquee-live/marquee/internal/core/schedule"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListGrouped returns all venues grouped into (city, state) sections.
// The store's ordered List feeds the adjacency scan directly.
func (service *Service) ListGrouped(ctx context.Context) ([]schedule.LocationGroup, error) {
	venues, err := service.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]schedule.VenueRow, 0, len(venues))
	for _, v := range venues {
		rows = append(rows, schedule.VenueRow{
			ID:    v.ID,
			Name:  v.Name,
			City:  v.City,
			State: v.State,
		})
	}

	return schedule.GroupByLocation(rows), nil
}

// Search performs a case-insensitive substring match on venue names.
func (service *Service) Search(ctx context.Context, term string) ([]schedule.SearchResult, error) {
	return service.repo.Search(ctx, term)
}

// Get loads one venue and partitions its shows into past and upcoming
// relative to the current instant.
func (service *Service) Get(ctx context.Context, id int) (*Detail, error) {
	v, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := service.repo.Shows(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := schedule.Partition(entries, time.Now())

	return &Detail{
		Venue:              *v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create validates the submission and persists a new venue.
func (service *Service) Create(ctx context.Context, form *Form) (*Venue, error) {
	v, err := form.Validate()
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	service.logger.Info("venue_created",
		slog.Int("venue_id", v.ID),
		slog.String("name", v.Name),
	)
	return v, nil
}

// Update validates the submission and overwrites the full record.
// Concurrent edits are last-writer-wins; no conflict detection is applied.
func (service *Service) Update(ctx context.Context, id int, form *Form) (*Venue, error) {
	v, err := form.Validate()
	if err != nil {
		return nil, err
	}
	v.ID = id

	if err := service.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	service.logger.Info("venue_updated", slog.Int("venue_id", v.ID))
	return v, nil
}

// Delete removes a venue and returns its name for the outcome message.
// A venue with dependent shows fails the referential constraint and the
// error surfaces unchanged.
func (service *Service) Delete(ctx context.Context, id int) (string, error) {
	v, err := service.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return v.Name, err
	}

	service.logger.Warn("venue_deleted",
		slog.Int("venue_id", id),
		slog.String("name", v.Name),
	)
	return v.Name, nil
}
