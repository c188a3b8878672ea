// Copyright (c) 2026 Marquee. All rights reserved.

package show

import "context"

// Repository is the show storage contract.
type Repository interface {
	ListAll(ctx context.Context) ([]ListRow, error)
	Create(ctx context.Context, s *Show) error
	ArtistExists(ctx context.Context, artistID int) (bool, error)
	VenueExists(ctx context.Context, venueID int) (bool, error)
}
