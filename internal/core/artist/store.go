// Copyright (c) 2026 Marquee. All rights reserved.

package artist

import (
	"context"

	"github.com/marquee-live/marquee/internal/core/schedule"
)

// Repository is the artist storage contract.
type Repository interface {
	List(ctx context.Context) ([]Ref, error)
	Search(ctx context.Context, term string) ([]schedule.SearchResult, error)
	Get(ctx context.Context, id int) (*Artist, error)
	Shows(ctx context.Context, artistID int) ([]schedule.Entry, error)
	Create(ctx context.Context, a *Artist) error
	Update(ctx context.Context, a *Artist) error
	Delete(ctx context.Context, id int) error
}
