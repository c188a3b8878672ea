// Copyright (c) 2026 Marquee. All rights reserved.

package artist

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

// List returns the id/name projection for the artist listing page.
func (service *Service) List(ctx context.Context) ([]Ref, error) {
	return service.repo.List(ctx)
}

// Search performs a case-insensitive substring match on artist names.
func (service *Service) Search(ctx context.Context, term string) ([]schedule.SearchResult, error) {
	return service.repo.Search(ctx, term)
}

// Get loads one artist and partitions its shows into past and upcoming
// relative to the current instant.
func (service *Service) Get(ctx context.Context, id int) (*Detail, error) {
	a, err := service.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := service.repo.Shows(ctx, id)
	if err != nil {
		return nil, err
	}

	past, upcoming := schedule.Partition(entries, time.Now())

	return &Detail{
		Artist:             *a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create validates the submission and persists a new artist.
func (service *Service) Create(ctx context.Context, form *Form) (*Artist, error) {
	a, err := form.Validate()
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	service.logger.Info("artist_created",
		slog.Int("artist_id", a.ID),
		slog.String("name", a.Name),
	)
	return a, nil
}

// Update validates the submission and overwrites the full record.
// Concurrent edits are last-writer-wins; no conflict detection is applied.
func (service *Service) Update(ctx context.Context, id int, form *Form) (*Artist, error) {
	a, err := form.Validate()
	if err != nil {
		return nil, err
	}
	a.ID = id

	if err := service.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	service.logger.Info("artist_updated", slog.Int("artist_id", a.ID))
	return a, nil
}

// Delete removes an artist and returns its name for the outcome message.
// An artist with dependent shows fails the referential constraint and the
// error surfaces unchanged.
func (service *Service) Delete(ctx context.Context, id int) (string, error) {
	a, err := service.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := service.repo.Delete(ctx, id); err != nil {
		return a.Name, err
	}

	service.logger.Warn("artist_deleted",
		slog.Int("artist_id", id),
		slog.String("name", a.Name),
	)
	return a.Name, nil
}
