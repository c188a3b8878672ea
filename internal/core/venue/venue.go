// Copyright (c) 2026 Marquee. All rights reserved.

// Package venue implements the venue side of the booking directory:
// grouped listing, name search, detail with past/upcoming shows, and
// full-record create/edit/delete.
package venue

import (
	"github.com/marquee-live/marquee/internal/core/schedule"
	"github.com/marquee-live/marquee/internal/platform/validate"
)

// Venue is a physical location that hosts performances.
type Venue struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// Detail is the venue page view: the record plus its shows split into past
// and upcoming halves, counterpart (artist) fields denormalized per entry.
type Detail struct {
	Venue
	PastShows          []schedule.Entry
	UpcomingShows      []schedule.Entry
	PastShowsCount     int
	UpcomingShowsCount int
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldGenres             = "genres"
	FieldWebsite            = "website"
	FieldSeekingTalent      = "seeking_talent"
	FieldSeekingDescription = "seeking_description"
)

// Form is the typed venue submission. Every field is resupplied on edit;
// there are no partial updates.
type Form struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Genres             []string
	Website            string
	SeekingTalent      bool
	SeekingDescription string
}

// Validate checks the form and maps it field by field onto a Venue.
//
// It is a pure function: either a complete entity or an aggregated
// validation error listing every failing field, never both.
func (f *Form) Validate() (*Venue, error) {
	v := &validate.Validator{}
	v.Required(FieldName, f.Name).MaxLen(FieldName, f.Name, 200)
	v.Required(FieldCity, f.City).MaxLen(FieldCity, f.City, 120)
	v.USState(FieldState, f.State)
	v.Required(FieldAddress, f.Address).MaxLen(FieldAddress, f.Address, 120)
	v.Phone(FieldPhone, f.Phone)
	v.RequiredList(FieldGenres, f.Genres)
	v.URL(FieldImageLink, f.ImageLink)
	v.URL(FieldFacebookLink, f.FacebookLink)
	v.URL(FieldWebsite, f.Website)
	v.MaxLen(FieldSeekingDescription, f.SeekingDescription, 500)
	v.Custom(FieldSeekingDescription,
		f.SeekingTalent && f.SeekingDescription == "",
		"Describe what you are seeking")

	if err := v.Err(); err != nil {
		return nil, err
	}

	return &Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Genres:             f.Genres,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}, nil
}

// FormFromVenue prefills an edit form from a stored record.
func FormFromVenue(v *Venue) *Form {
	return &Form{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Genres:             v.Genres,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}
