// Copyright (c) 2026 Marquee. All rights reserved.

// Package show implements the booking leg joining one artist to one venue at
// a start time: the global listing and new-show creation.
package show

import (
	"strconv"
	"time"

	requestutil "github.com/marquee-live/marquee/internal/platform/request"
	"github.com/marquee-live/marquee/internal/platform/validate"
)

// Show is a single booking of an artist at a venue.
type Show struct {
	ID        int       `json:"id"`
	StartTime time.Time `json:"start_time"`
	ArtistID  int       `json:"artist_id"`
	VenueID   int       `json:"venue_id"`
}

// ListRow is one row of the global shows listing, with both endpoints
// denormalized for display.
type ListRow struct {
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

const (
	FieldArtistID  = "artist_id"
	FieldVenueID   = "venue_id"
	FieldStartTime = "start_time"
)

// Form is the raw new-show submission. Fields stay as strings until
// Validate converts them.
type Form struct {
	ArtistID  string
	VenueID   string
	StartTime string
}

// Validate converts and checks the submission. Either a complete Show
// (ID zero) or an aggregated validation error, never both.
func (f *Form) Validate() (*Show, error) {
	v := &validate.Validator{}

	artistID, err := strconv.Atoi(f.ArtistID)
	v.Custom(FieldArtistID, err != nil || artistID <= 0, "Must be a positive artist id")

	venueID, err := strconv.Atoi(f.VenueID)
	v.Custom(FieldVenueID, err != nil || venueID <= 0, "Must be a positive venue id")

	startTime, err := requestutil.ParseTime(f.StartTime)
	v.Custom(FieldStartTime, f.StartTime == "" || err != nil, "Must be a valid date and time")

	if err := v.Err(); err != nil {
		return nil, err
	}

	return &Show{
		ArtistID:  artistID,
		VenueID:   venueID,
		StartTime: startTime,
	}, nil
}
