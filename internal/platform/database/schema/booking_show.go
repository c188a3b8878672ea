// Copyright (c) 2026 Marquee. All rights reserved.

package schema

// ShowTable represents the 'booking.show' table
type ShowTable struct {
	Table     string
	ID        string
	StartTime string
	ArtistID  string
	VenueID   string
}

// Show is the schema definition for booking.show
//
// The show row carries both foreign keys directly; there is no separate
// association table.
var Show = ShowTable{
	Table:     "booking.show",
	ID:        "id",
	StartTime: "start_time",
	ArtistID:  "artist_id",
	VenueID:   "venue_id",
}

func (t ShowTable) Columns() []string {
	return []string{t.ID, t.StartTime, t.ArtistID, t.VenueID}
}
