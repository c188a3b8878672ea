// Copyright (c) 2026 Marquee. All rights reserved.

package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquee-live/marquee/internal/core/schedule"
)

/*
TestGroupByLocation_Sorted verifies the canonical grouping example: two
Austin venues followed by one Boston venue collapse into two groups.
*/
func TestGroupByLocation_Sorted(t *testing.T) {
	rows := []schedule.VenueRow{
		{ID: 1, Name: "The Musical Hop", City: "Austin", State: "TX"},
		{ID: 2, Name: "Stomping Grounds", City: "Austin", State: "TX"},
		{ID: 3, Name: "Park Square Live", City: "Boston", State: "MA"},
	}

	groups := schedule.GroupByLocation(rows)

	require.Len(t, groups, 2)

	assert.Equal(t, "Austin", groups[0].City)
	assert.Equal(t, "TX", groups[0].State)
	require.Len(t, groups[0].Venues, 2)
	assert.Equal(t, 1, groups[0].Venues[0].ID)
	assert.Equal(t, 2, groups[0].Venues[1].ID)

	assert.Equal(t, "Boston", groups[1].City)
	assert.Equal(t, "MA", groups[1].State)
	require.Len(t, groups[1].Venues, 1)
	assert.Equal(t, 3, groups[1].Venues[0].ID)
}

/*
TestGroupByLocation_Properties checks the structural guarantees for sorted
input: concatenating the group venue lists reproduces the input in order,
no two adjacent groups share a (city, state) pair, and listing-time
upcoming counts are zero.
*/
func TestGroupByLocation_Properties(t *testing.T) {
	rows := []schedule.VenueRow{
		{ID: 10, Name: "A", City: "Austin", State: "TX"},
		{ID: 11, Name: "B", City: "Austin", State: "TX"},
		{ID: 12, Name: "C", City: "Boston", State: "MA"},
		{ID: 13, Name: "D", City: "Portland", State: "ME"},
		// Same city name, different state: must not merge with Portland, ME.
		{ID: 14, Name: "E", City: "Portland", State: "OR"},
	}

	groups := schedule.GroupByLocation(rows)

	var flattened []int
	for i, group := range groups {
		if i > 0 {
			prev := groups[i-1]
			assert.False(t, prev.City == group.City && prev.State == group.State,
				"adjacent groups must not share a (city, state) pair")
		}
		for _, venue := range group.Venues {
			flattened = append(flattened, venue.ID)
			assert.Zero(t, venue.NumUpcomingShows)
		}
	}

	assert.Equal(t, []int{10, 11, 12, 13, 14}, flattened)
}

/*
TestGroupByLocation_UnsortedDuplicates pins the documented adjacency
behavior: equal keys in non-adjacent positions produce duplicate groups
rather than being merged. Callers own the ordering.
*/
func TestGroupByLocation_UnsortedDuplicates(t *testing.T) {
	rows := []schedule.VenueRow{
		{ID: 1, City: "Austin", State: "TX"},
		{ID: 2, City: "Boston", State: "MA"},
		{ID: 3, City: "Austin", State: "TX"},
	}

	groups := schedule.GroupByLocation(rows)

	require.Len(t, groups, 3)
	assert.Equal(t, "Austin", groups[0].City)
	assert.Equal(t, "Boston", groups[1].City)
	assert.Equal(t, "Austin", groups[2].City)
}

/*
TestGroupByLocation_Empty verifies that no venues yield no groups.
*/
func TestGroupByLocation_Empty(t *testing.T) {
	assert.Empty(t, schedule.GroupByLocation(nil))
}

/*
TestPartition_Example verifies the canonical split: a 2023 show and a 2099
show partitioned at 2024 land in past and upcoming respectively.
*/
func TestPartition_Example(t *testing.T) {
	entries := []schedule.Entry{
		{CounterpartID: 1, StartTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{CounterpartID: 2, StartTime: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	past, upcoming := schedule.Partition(entries, ref)

	require.Len(t, past, 1)
	require.Len(t, upcoming, 1)
	assert.Equal(t, 1, past[0].CounterpartID)
	assert.Equal(t, 2, upcoming[0].CounterpartID)
}

/*
TestPartition_Boundary pins the inclusive-upcoming rule: a show starting at
the exact reference instant is upcoming, one a nanosecond earlier is past.
*/
func TestPartition_Boundary(t *testing.T) {
	ref := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)
	entries := []schedule.Entry{
		{CounterpartID: 1, StartTime: ref},
		{CounterpartID: 2, StartTime: ref.Add(-time.Nanosecond)},
	}

	past, upcoming := schedule.Partition(entries, ref)

	require.Len(t, upcoming, 1)
	assert.Equal(t, 1, upcoming[0].CounterpartID)
	require.Len(t, past, 1)
	assert.Equal(t, 2, past[0].CounterpartID)
}

/*
TestPartition_Exact verifies the exact-partition property over a mixed list:
no entry is lost or duplicated and relative order is preserved per half.
*/
func TestPartition_Exact(t *testing.T) {
	ref := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := []schedule.Entry{
		{CounterpartID: 1, StartTime: ref.AddDate(-1, 0, 0)},
		{CounterpartID: 2, StartTime: ref.AddDate(1, 0, 0)},
		{CounterpartID: 3, StartTime: ref.AddDate(-2, 0, 0)},
		{CounterpartID: 4, StartTime: ref},
		{CounterpartID: 5, StartTime: ref.AddDate(0, 6, 0)},
	}

	past, upcoming := schedule.Partition(entries, ref)

	assert.Equal(t, len(entries), len(past)+len(upcoming))

	var pastIDs, upcomingIDs []int
	for _, e := range past {
		assert.True(t, e.StartTime.Before(ref))
		pastIDs = append(pastIDs, e.CounterpartID)
	}
	for _, e := range upcoming {
		assert.False(t, e.StartTime.Before(ref))
		upcomingIDs = append(upcomingIDs, e.CounterpartID)
	}

	assert.Equal(t, []int{1, 3}, pastIDs)
	assert.Equal(t, []int{2, 4, 5}, upcomingIDs)
}

/*
TestPartition_Empty verifies that an empty show list yields two empty halves.
*/
func TestPartition_Empty(t *testing.T) {
	past, upcoming := schedule.Partition(nil, time.Now())
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}
