package models

import (
	"context"
	"errors"
	"slices"
	"time"

	"eventia/internal/db"
	"eventia/internal/errmsg"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultEventImage = "https://images.unsplash.com/photo-1540575467063-178a50c2df87?q=80&w=2070&auto=format&fit=crop"

type Event struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	Location    string    `bson:"location" json:"location"`
	Category    string    `bson:"category" json:"category"`
	Image       string    `bson:"image" json:"image"`
	Images      []string  `bson:"images,omitempty" json:"images,omitempty"`
	TicketPrice float64   `bson:"ticketPrice" json:"ticketPrice"`
	Capacity    int       `bson:"capacity" json:"capacity"`
	Organizer   string    `bson:"organizer" json:"organizer"`
	Attendees   []string  `bson:"attendees" json:"attendees"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (e Event) AvailableSeats() int {
	return e.Capacity - len(e.Attendees)
}

func (e Event) IsHouseFull() bool {
	return e.AvailableSeats() <= 0
}

func (e Event) HasAttendee(userID string) bool {
	return slices.Contains(e.Attendees, userID)
}

// EventFilter narrows the public browse listing.
type EventFilter struct {
	Category  string
	Location  string
	DateFrom  time.Time
	Organizer string
}

func (f EventFilter) query() bson.M {
	query := bson.M{}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Location != "" {
		query["location"] = bson.M{"$regex": f.Location, "$options": "i"}
	}
	if !f.DateFrom.IsZero() {
		query["date"] = bson.M{"$gte": f.DateFrom}
	}
	if f.Organizer != "" {
		query["organizer"] = f.Organizer
	}
	return query
}

func CreateEvent(ctx context.Context, event Event) errmsg.StatusError {
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now

	if event.Image == "" {
		event.Image = defaultEventImage
	}

	// attendees must be a real array from day one, the registration
	// filter sizes it server-side
	if event.Attendees == nil {
		event.Attendees = []string{}
	}

	_, err := db.Events.InsertOne(ctx, event)
	if err != nil {
		return errmsg.InternalServerError(err)
	}

	return errmsg.EmptyStatusError
}

func GetEventByID(ctx context.Context, id string) (Event, errmsg.StatusError) {
	var event Event
	err := db.Events.FindOne(ctx, bson.M{"id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return event, errmsg.EventNotFound
		}
		return event, errmsg.InternalServerError(err)
	}

	return event, errmsg.EmptyStatusError
}

func ListEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	var events []Event
	cursor, err := db.Events.Find(
		ctx,
		filter.query(),
		options.Find().SetSort(bson.M{"date": 1}),
	)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// ListEventsAttendedBy returns the events holding a seat for the user.
func ListEventsAttendedBy(ctx context.Context, userID string) ([]Event, error) {
	var events []Event
	cursor, err := db.Events.Find(
		ctx,
		bson.M{"attendees": userID},
		options.Find().SetSort(bson.M{"date": 1}),
	)
	if err != nil {
		return nil, err
	}
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

// EventUpdate carries the patchable fields. Organizer and attendees are
// deliberately absent, they are immutable through this path.
type EventUpdate struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Location    *string    `json:"location"`
	Category    *string    `json:"category"`
	Image       *string    `json:"image"`
	Images      *[]string  `json:"images"`
	TicketPrice *float64   `json:"ticketPrice"`
	Capacity    *int       `json:"capacity"`
}

func UpdateEvent(ctx context.Context, event Event, update EventUpdate) (Event, errmsg.StatusError) {
	set := bson.M{"updatedAt": time.Now().UTC()}

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.TicketPrice != nil {
		set["ticketPrice"] = *update.TicketPrice
	}
	if update.Capacity != nil {
		if *update.Capacity < len(event.Attendees) {
			return event, errmsg.EventCapacityBelowAttendees
		}
		set["capacity"] = *update.Capacity
	}

	_, err := db.Events.UpdateOne(ctx, bson.M{"id": event.ID}, bson.M{"$set": set})
	if err != nil {
		return event, errmsg.InternalServerError(err)
	}

	return GetEventByID(ctx, event.ID)
}

func DeleteEvent(ctx context.Context, id string) errmsg.StatusError {
	res, err := db.Events.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errmsg.InternalServerError(err)
	}
	if res.DeletedCount == 0 {
		return errmsg.EventNotFound
	}

	return errmsg.EmptyStatusError
}

// RegisterAttendee appends userID to the event's attendees as a single
// conditional update: the filter only matches while the user is absent AND
// a seat is free, so the capacity check and the append cannot be split by a
// concurrent request. Two racing registrations for the last seat resolve
// server-side; exactly one matches.
func RegisterAttendee(ctx context.Context, eventID string, userID string) (Event, errmsg.StatusError) {
	filter := bson.M{
		"id":        eventID,
		"attendees": bson.M{"$ne": userID},
		"$expr": bson.M{
			"$lt": bson.A{bson.M{"$size": "$attendees"}, "$capacity"},
		},
	}
	update := bson.M{
		"$addToSet": bson.M{"attendees": userID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	}

	res, err := db.Events.UpdateOne(ctx, filter, update)
	if err != nil {
		return Event{}, errmsg.InternalServerError(err)
	}

	if res.MatchedCount == 0 {
		// the guarded write did not land; re-read to tell why
		event, serr := GetEventByID(ctx, eventID)
		if serr != errmsg.EmptyStatusError {
			return event, serr
		}
		if event.HasAttendee(userID) {
			return event, errmsg.EventAlreadyRegistered
		}
		return event, errmsg.EventHouseFull
	}

	return GetEventByID(ctx, eventID)
}
