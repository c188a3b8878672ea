// Copyright (c) 2026 Marquee. All rights reserved.

package show

import (
	"context"
	"log/slog"

	"github.com/marquee-live/marquee/internal/platform/apperr"
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

// ListAll returns every show with both endpoints denormalized, ordered by
// start time.
func (service *Service) ListAll(ctx context.Context) ([]ListRow, error) {
	return service.repo.ListAll(ctx)
}

// Create validates the submission, checks both referenced records exist,
// and persists the show. Existence is checked up front so the submitter is
// told which side is missing instead of receiving a bare constraint error;
// the database constraint still backstops a concurrent delete.
func (service *Service) Create(ctx context.Context, form *Form) (*Show, error) {
	s, err := form.Validate()
	if err != nil {
		return nil, err
	}

	v := &refCheck{}
	artistOK, err := service.repo.ArtistExists(ctx, s.ArtistID)
	if err != nil {
		return nil, err
	}
	v.missing(FieldArtistID, !artistOK, "No artist with this id exists")

	venueOK, err := service.repo.VenueExists(ctx, s.VenueID)
	if err != nil {
		return nil, err
	}
	v.missing(FieldVenueID, !venueOK, "No venue with this id exists")

	if err := v.err(); err != nil {
		return nil, err
	}

	if err := service.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	service.logger.Info("show_created",
		slog.Int("show_id", s.ID),
		slog.Int("artist_id", s.ArtistID),
		slog.Int("venue_id", s.VenueID),
		slog.Time("start_time", s.StartTime),
	)
	return s, nil
}

// refCheck aggregates missing-reference failures into one validation error,
// so a submission with both ids wrong reports both at once.
type refCheck struct {
	errs []apperr.FieldError
}

func (c *refCheck) missing(field string, failed bool, message string) {
	if failed {
		c.errs = append(c.errs, apperr.FieldError{Field: field, Message: message})
	}
}

func (c *refCheck) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", c.errs...)
}
