// Copyright (c) 2026 Marquee. All rights reserved.

package schema

// ArtistTable represents the 'booking.artist' table
type ArtistTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Phone              string
	Genres             string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       string
	SeekingDescription string
}

// Artist is the schema definition for booking.artist
var Artist = ArtistTable{
	Table:              "booking.artist",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Phone:              "phone",
	Genres:             "genres",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	Website:            "website",
	SeekingVenue:       "seeking_venue",
	SeekingDescription: "seeking_description",
}

func (t ArtistTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.City, t.State, t.Phone, t.Genres, t.ImageLink,
		t.FacebookLink, t.Website, t.SeekingVenue, t.SeekingDescription,
	}
}
