// Copyright (c) 2026 Marquee. All rights reserved.

/*
Package schedule holds the derived-view logic of the booking directory:
grouping venues by location and splitting a show list into past and
upcoming halves.

Both operations are pure, total functions over their input slices. They
perform no I/O and cannot fail; errors belong to the storage layer that
produces the inputs.
*/
package schedule

import "time"

// VenueRow is the minimal venue projection the grouping scan operates on.
type VenueRow struct {
	ID    int
	Name  string
	City  string
	State string
}

// VenueRef is one venue inside a location group.
//
// NumUpcomingShows is always 0 in the grouped listing: the listing page does
// not compute per-venue counts. Search results report real counts through
// [SearchResult] instead.
type VenueRef struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// LocationGroup is one (city, state) section of the venue listing.
type LocationGroup struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []VenueRef `json:"venues"`
}

// SearchResult is one row of a name-search response, shared by venue and
// artist searches.
type SearchResult struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// GroupByLocation partitions venues into (city, state) sections with a single
// left-to-right scan: a new group starts whenever the (city, state) pair
// differs from the immediately preceding row's pair.
//
// Callers MUST supply rows already ordered by (city, state) — the store's
// List contract guarantees this. Adjacency is the only test performed here:
// the function does not sort defensively, so unsorted input with equal keys
// in non-adjacent positions produces duplicate groups. That is intentional;
// fix the ordering at the call site, not here.
func GroupByLocation(rows []VenueRow) []LocationGroup {
	var groups []LocationGroup

	for _, row := range rows {
		last := len(groups) - 1
		if last < 0 || groups[last].City != row.City || groups[last].State != row.State {
			groups = append(groups, LocationGroup{City: row.City, State: row.State})
			last++
		}
		groups[last].Venues = append(groups[last].Venues, VenueRef{
			ID:   row.ID,
			Name: row.Name,
		})
	}

	return groups
}

// Entry is one show on a venue or artist detail page, denormalized with the
// counterpart's identity so the page needs no further lookup: on a venue
// page the counterpart is the artist, on an artist page the venue.
type Entry struct {
	CounterpartID    int       `json:"counterpart_id"`
	CounterpartName  string    `json:"counterpart_name"`
	CounterpartImage string    `json:"counterpart_image_link"`
	StartTime        time.Time `json:"start_time"`
}

// Partition splits entries into past and upcoming halves relative to ref.
//
// The boundary is inclusive-upcoming: start_time < ref is past, while
// start_time >= ref — including a show starting at the exact reference
// instant — is upcoming. Relative input order is preserved within each half,
// and the two halves partition the input exactly.
func Partition(entries []Entry, ref time.Time) (past, upcoming []Entry) {
	for _, entry := range entries {
		if entry.StartTime.Before(ref) {
			past = append(past, entry)
		} else {
			upcoming = append(upcoming, entry)
		}
	}
	return past, upcoming
}
