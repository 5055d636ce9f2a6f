package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

type EventPayload struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Location  string   `json:"location"`
	Capacity  int      `json:"capacity"`
	Organizer string   `json:"organizer"`
	Attendees []string `json:"attendees"`
}

func API_CreateEvent(
	t *testing.T,
	app *fiber.App,
	token string,
	title string,
	capacity int,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
		Location    string  `json:"location"`
		Category    string  `json:"category"`
		TicketPrice float64 `json:"ticketPrice"`
		Capacity    int     `json:"capacity"`
	}{
		Title:       title,
		Description: "An event created by the test suite",
		Date:        time.Now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339),
		Location:    "Test Hall",
		Category:    "testing",
		TicketPrice: 0,
		Capacity:    capacity,
	}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/api/events",
		sendBytes,
		&token,
	)
}

// MustCreateEvent creates an event and returns its id.
func MustCreateEvent(t *testing.T, app *fiber.App, token string, title string, capacity int) string {
	body, statusCode := API_CreateEvent(t, app, token, title, capacity)
	require.Equal(t, http.StatusCreated, statusCode)

	var envelope struct {
		Data struct {
			Event EventPayload `json:"event"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.NotEmpty(t, envelope.Data.Event.ID)

	return envelope.Data.Event.ID
}

func API_ListEvents(
	t *testing.T,
	app *fiber.App,
	query string,
) (bodyBytes []byte, statusCode int) {
	path := "/api/events"
	if query != "" {
		path += "?" + query
	}
	return RequestRunner(t, app, "GET", path, nil, nil)
}

func API_MyEvents(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "GET", "/api/events/mine", nil, &token)
}

func API_GetEvent(
	t *testing.T,
	app *fiber.App,
	eventID string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "GET", "/api/events/"+eventID, nil, nil)
}

func API_UpdateEvent(
	t *testing.T,
	app *fiber.App,
	token string,
	eventID string,
	sendBytes []byte,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "PATCH", "/api/events/"+eventID, sendBytes, &token)
}

func API_DeleteEvent(
	t *testing.T,
	app *fiber.App,
	token string,
	eventID string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "DELETE", "/api/events/"+eventID, nil, &token)
}

func API_RegisterForEvent(
	t *testing.T,
	app *fiber.App,
	token string,
	eventID string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "POST", "/api/events/"+eventID+"/register", nil, &token)
}

func API_EventCapacity(
	t *testing.T,
	app *fiber.App,
	eventID string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "GET", "/api/events/"+eventID+"/capacity", nil, nil)
}

func API_EventLogs(
	t *testing.T,
	app *fiber.App,
	token string,
	eventID string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "GET", "/api/events/"+eventID+"/logs", nil, &token)
}

type CapacityPayload struct {
	Capacity       int  `json:"capacity"`
	AttendeesCount int  `json:"attendeesCount"`
	AvailableSeats int  `json:"availableSeats"`
	IsHouseFull    bool `json:"isHouseFull"`
}

// EventCapacity fetches and decodes the capacity snapshot of an event.
func EventCapacity(t *testing.T, app *fiber.App, eventID string) CapacityPayload {
	body, statusCode := API_EventCapacity(t, app, eventID)
	require.Equal(t, http.StatusOK, statusCode)

	var envelope struct {
		Data CapacityPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	return envelope.Data
}
