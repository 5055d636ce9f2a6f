package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEventDerivedFields(t *testing.T) {
	event := Event{
		Capacity:  3,
		Attendees: []string{"a", "b"},
	}

	require.Equal(t, 1, event.AvailableSeats())
	require.False(t, event.IsHouseFull())

	event.Attendees = append(event.Attendees, "c")
	require.Equal(t, 0, event.AvailableSeats())
	require.True(t, event.IsHouseFull())

	// available seats plus attendees always equals capacity
	require.Equal(t, event.Capacity, event.AvailableSeats()+len(event.Attendees))
}

func TestEventHasAttendee(t *testing.T) {
	event := Event{Attendees: []string{"a", "b"}}

	require.True(t, event.HasAttendee("a"))
	require.False(t, event.HasAttendee("z"))

	require.False(t, Event{}.HasAttendee("a"))
}

func TestEventFilterQuery(t *testing.T) {
	require.Equal(t, bson.M{}, EventFilter{}.query())

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	query := EventFilter{
		Category: "music",
		Location: "berlin",
		DateFrom: from,
	}.query()

	require.Equal(t, "music", query["category"])
	require.Equal(t, bson.M{"$regex": "berlin", "$options": "i"}, query["location"])
	require.Equal(t, bson.M{"$gte": from}, query["date"])
}

func TestEventFilterQueryByOrganizer(t *testing.T) {
	query := EventFilter{Organizer: "org-1"}.query()
	require.Equal(t, bson.M{"organizer": "org-1"}, query)
}
