// Copyright (c) 2026 Marquee. All rights reserved.

package venue_test

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-live/marquee/internal/core/schedule"
	"github.com/marquee-live/marquee/internal/core/venue"
	"github.com/marquee-live/marquee/internal/platform/apperr"
	"github.com/marquee-live/marquee/internal/platform/dberr"
)

// fakeRepo is an in-memory Repository honoring the ordered-List contract.
type fakeRepo struct {
	venues map[int]venue.Venue
	shows  map[int][]schedule.Entry
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		venues: make(map[int]venue.Venue),
		shows:  make(map[int][]schedule.Entry),
		nextID: 1,
	}
}

func (r *fakeRepo) List(context.Context) ([]venue.Venue, error) {
	out := make([]venue.Venue, 0, len(r.venues))
	for _, v := range r.venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeRepo) Search(_ context.Context, term string) ([]schedule.SearchResult, error) {
	var results []schedule.SearchResult
	for _, v := range r.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			results = append(results, schedule.SearchResult{ID: v.ID, Name: v.Name})
		}
	}
	return results, nil
}

func (r *fakeRepo) Get(_ context.Context, id int) (*venue.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return &v, nil
}

func (r *fakeRepo) Shows(_ context.Context, venueID int) ([]schedule.Entry, error) {
	return r.shows[venueID], nil
}

func (r *fakeRepo) Create(_ context.Context, v *venue.Venue) error {
	v.ID = r.nextID
	r.nextID++
	r.venues[v.ID] = *v
	return nil
}

func (r *fakeRepo) Update(_ context.Context, v *venue.Venue) error {
	if _, ok := r.venues[v.ID]; !ok {
		return dberr.ErrNotFound
	}
	r.venues[v.ID] = *v
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.venues[id]; !ok {
		return dberr.ErrNotFound
	}
	if len(r.shows[id]) > 0 {
		return dberr.ErrForeignKey
	}
	delete(r.venues, id)
	return nil
}

func testService(repo venue.Repository) *venue.Service {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return venue.NewService(repo, logger)
}

func validForm() *venue.Form {
	return &venue.Form{
		Name:    "The Musical Hop",
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
		Genres:  []string{"Jazz", "Blues"},
		Website: "https://www.themusicalhop.com",
	}
}

/*
TestService_CreateRoundTrip verifies that a created venue reads back with
the ordered genre list intact.
*/
func TestService_CreateRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	created, err := service.Create(context.Background(), validForm())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	detail, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz", "Blues"}, detail.Genres)
	assert.Equal(t, "The Musical Hop", detail.Name)
}

/*
TestService_CreateValidation verifies that an invalid submission reports
every failing field and persists nothing.
*/
func TestService_CreateValidation(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	form := validForm()
	form.Name = ""
	form.State = "Texas"
	form.Genres = nil

	_, err := service.Create(context.Background(), form)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	ae := apperr.As(err)
	require.NotNil(t, ae)
	fields := make([]string, 0, len(ae.Details))
	for _, d := range ae.Details {
		fields = append(fields, d.Field)
	}
	assert.Equal(t, []string{"name", "state", "genres"}, fields)

	assert.Empty(t, repo.venues)
}

/*
TestService_ListGrouped verifies the grouped listing built on the store's
(city, state) ordering.
*/
func TestService_ListGrouped(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	seed := []venue.Venue{
		{Name: "Hop", City: "Austin", State: "TX"},
		{Name: "Stomp", City: "Austin", State: "TX"},
		{Name: "Square", City: "Boston", State: "MA"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(context.Background(), &seed[i]))
	}

	groups, err := service.ListGrouped(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "Austin", groups[0].City)
	assert.Len(t, groups[0].Venues, 2)
	assert.Equal(t, "Boston", groups[1].City)
	assert.Len(t, groups[1].Venues, 1)
}

/*
TestService_GetPartitionsShows verifies that the detail view splits shows
into past and upcoming with correct counts.
*/
func TestService_GetPartitionsShows(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	v := venue.Venue{Name: "Hop", City: "Austin", State: "TX"}
	require.NoError(t, repo.Create(context.Background(), &v))

	repo.shows[v.ID] = []schedule.Entry{
		{CounterpartID: 7, CounterpartName: "Guns N Petals", StartTime: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		{CounterpartID: 8, CounterpartName: "The Wild Sax Band", StartTime: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	detail, err := service.Get(context.Background(), v.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, 7, detail.PastShows[0].CounterpartID)
	require.Len(t, detail.UpcomingShows, 1)
	assert.Equal(t, 8, detail.UpcomingShows[0].CounterpartID)
}

/*
TestService_GetNotFound verifies the explicit not-found error for a missing id.
*/
func TestService_GetNotFound(t *testing.T) {
	service := testService(newFakeRepo())

	_, err := service.Get(context.Background(), 999)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_DeleteWithoutShows verifies that a showless venue deletes and
disappears from the listing.
*/
func TestService_DeleteWithoutShows(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	v := venue.Venue{Name: "Hop", City: "Austin", State: "TX"}
	require.NoError(t, repo.Create(context.Background(), &v))

	name, err := service.Delete(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hop", name)

	groups, err := service.ListGrouped(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
}

/*
TestService_DeleteWithShows verifies that dependent shows block deletion.
*/
func TestService_DeleteWithShows(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	v := venue.Venue{Name: "Hop", City: "Austin", State: "TX"}
	require.NoError(t, repo.Create(context.Background(), &v))
	repo.shows[v.ID] = []schedule.Entry{{CounterpartID: 1, StartTime: time.Now()}}

	name, err := service.Delete(context.Background(), v.ID)
	require.Error(t, err)
	assert.Equal(t, "Hop", name)
	assert.Contains(t, repo.venues, v.ID)
}

/*
TestService_SearchCaseInsensitive verifies property: a case-varied substring
present in exactly one name returns count 1 with that id.
*/
func TestService_SearchCaseInsensitive(t *testing.T) {
	repo := newFakeRepo()
	service := testService(repo)

	seed := []venue.Venue{
		{Name: "The Musical Hop", City: "Austin", State: "TX"},
		{Name: "Park Square Live Music & Coffee", City: "Boston", State: "MA"},
	}
	for i := range seed {
		require.NoError(t, repo.Create(context.Background(), &seed[i]))
	}

	results, err := service.Search(context.Background(), "MUSICAL")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, seed[0].ID, results[0].ID)
}
