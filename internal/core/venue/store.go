// Copyright (c) 2026 Marquee. All rights reserved.

package venue

import (
	"context"

	"github.com/marquee-live/marquee/internal/core/schedule"
)

// Repository is the venue storage contract.
//
// List returns venues ordered by (city, state) ascending — the grouping scan
// in the schedule package depends on that ordering and does not sort
// defensively.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	Search(ctx context.Context, term string) ([]schedule.SearchResult, error)
	Get(ctx context.Context, id int) (*Venue, error)
	Shows(ctx context.Context, venueID int) ([]schedule.Entry, error)
	Create(ctx context.Context, v *Venue) error
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id int) error
}
