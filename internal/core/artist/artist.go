// Copyright (c) 2026 Marquee. All rights reserved.

// Package artist implements the performer side of the booking directory:
// listing, name search, detail with past/upcoming shows, and full-record
// create/edit/delete.
package artist

import (
	"github.com/marquee-live/marquee/internal/core/schedule"
	"github.com/marquee-live/marquee/internal/platform/validate"
)

// Artist is a performer who can be booked at venues.
type Artist struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// Ref is the id/name projection used by the artist listing page.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Detail is the artist page view: the record plus its shows split into past
// and upcoming halves, counterpart (venue) fields denormalized per entry.
type Detail struct {
	Artist
	PastShows          []schedule.Entry
	UpcomingShows      []schedule.Entry
	PastShowsCount     int
	UpcomingShowsCount int
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldPhone              = "phone"
	FieldGenres             = "genres"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldWebsite            = "website"
	FieldSeekingVenue       = "seeking_venue"
	FieldSeekingDescription = "seeking_description"
)

// Form is the typed artist submission. Every field is resupplied on edit;
// there are no partial updates.
type Form struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
}

// Validate checks the form and maps it field by field onto an Artist.
//
// It is a pure function: either a complete entity or an aggregated
// validation error listing every failing field, never both.
func (f *Form) Validate() (*Artist, error) {
	v := &validate.Validator{}
	v.Required(FieldName, f.Name).MaxLen(FieldName, f.Name, 200)
	v.Required(FieldCity, f.City).MaxLen(FieldCity, f.City, 120)
	v.USState(FieldState, f.State)
	v.Phone(FieldPhone, f.Phone)
	v.RequiredList(FieldGenres, f.Genres)
	v.URL(FieldImageLink, f.ImageLink)
	v.URL(FieldFacebookLink, f.FacebookLink)
	v.URL(FieldWebsite, f.Website)
	v.MaxLen(FieldSeekingDescription, f.SeekingDescription, 500)
	v.Custom(FieldSeekingDescription,
		f.SeekingVenue && f.SeekingDescription == "",
		"Describe what you are seeking")

	if err := v.Err(); err != nil {
		return nil, err
	}

	return &Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

// FormFromArtist prefills an edit form from a stored record.
func FormFromArtist(a *Artist) *Form {
	return &Form{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}
