package events

import (
	"encoding/json"
	"net/http"
	"testing"

	"eventia/internal/errmsg"
	"eventia/test/helpers"

	"github.com/stretchr/testify/require"
)

func TestEventsCreateRequiresOrganizerRole(t *testing.T) {
	_, userToken := helpers.CreateAccount(t, app, "user")

	body, statusCode := helpers.API_CreateEvent(t, app, userToken, "Forbidden Event", 10)
	helpers.ResponseErrorCheck(t, app, errmsg.AuthForbidden, body, statusCode)
}

func TestEventsCreateAndGet(t *testing.T) {
	organizerID, token := helpers.CreateAccount(t, app, "organizer")
	eventID := helpers.MustCreateEvent(t, app, token, "Launch Party", 25)

	body, statusCode := helpers.API_GetEvent(t, app, eventID)
	require.Equal(t, http.StatusOK, statusCode)

	var envelope struct {
		Data struct {
			Event struct {
				helpers.EventPayload
				AvailableSeats int  `json:"availableSeats"`
				IsHouseFull    bool `json:"isHouseFull"`
				OrganizerInfo  struct {
					ID string `json:"id"`
				} `json:"organizerInfo"`
			} `json:"event"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	event := envelope.Data.Event
	require.Equal(t, "Launch Party", event.Title)
	require.Equal(t, organizerID, event.Organizer)
	require.Equal(t, organizerID, event.OrganizerInfo.ID)
	require.Equal(t, 25, event.AvailableSeats)
	require.False(t, event.IsHouseFull)
}

func TestEventsGetMissing(t *testing.T) {
	body, statusCode := helpers.API_GetEvent(t, app, "does-not-exist")
	helpers.ResponseErrorCheck(t, app, errmsg.EventNotFound, body, statusCode)
}

func TestEventsListFiltersByCategory(t *testing.T) {
	_, token := helpers.CreateAccount(t, app, "organizer")
	eventID := helpers.MustCreateEvent(t, app, token, "Category Probe", 5)

	body, statusCode := helpers.API_ListEvents(t, app, "category=testing")
	require.Equal(t, http.StatusOK, statusCode)

	var envelope struct {
		Data struct {
			Results int                    `json:"results"`
			Events  []helpers.EventPayload `json:"events"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, envelope.Data.Results, len(envelope.Data.Events))

	found := false
	for _, e := range envelope.Data.Events {
		require.Equal(t, "testing", e.Category)
		if e.ID == eventID {
			found = true
		}
	}
	require.True(t, found)
}

func TestEventsMineRequiresVerifiedIdentity(t *testing.T) {
	// a bare Authorization header must never pass for organizer-scoped lists
	garbage := "Bearer-but-not-a-token"
	body, statusCode := helpers.API_MyEvents(t, app, garbage)
	helpers.ResponseErrorCheck(t, app, errmsg.AuthInvalidToken, body, statusCode)

	_, userToken := helpers.CreateAccount(t, app, "user")
	body, statusCode = helpers.API_MyEvents(t, app, userToken)
	helpers.ResponseErrorCheck(t, app, errmsg.AuthForbidden, body, statusCode)
}

func TestEventsMineListsOwnOnly(t *testing.T) {
	_, tokenA := helpers.CreateAccount(t, app, "organizer")
	_, tokenB := helpers.CreateAccount(t, app, "organizer")

	ownID := helpers.MustCreateEvent(t, app, tokenA, "Mine A", 5)
	otherID := helpers.MustCreateEvent(t, app, tokenB, "Mine B", 5)

	body, statusCode := helpers.API_MyEvents(t, app, tokenA)
	require.Equal(t, http.StatusOK, statusCode)

	var envelope struct {
		Data struct {
			Events []helpers.EventPayload `json:"events"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	foundOwn := false
	for _, e := range envelope.Data.Events {
		require.NotEqual(t, otherID, e.ID)
		if e.ID == ownID {
			foundOwn = true
		}
	}
	require.True(t, foundOwn)
}

func TestEventsUpdateByOwner(t *testing.T) {
	_, token := helpers.CreateAccount(t, app, "organizer")
	eventID := helpers.MustCreateEvent(t, app, token, "Old Title", 10)

	payload, err := json.Marshal(map[string]any{"title": "New Title"})
	require.NoError(t, err)

	body, statusCode := helpers.API_UpdateEvent(t, app, token, eventID, payload)
	require.Equal(t, http.StatusOK, statusCode)

	var envelope struct {
		Data struct {
			Event helpers.EventPayload `json:"event"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, "New Title", envelope.Data.Event.Title)
}

func TestEventsUpdateByNonOwnerOrganizer(t *testing.T) {
	_, ownerToken := helpers.CreateAccount(t, app, "organizer")
	_, otherToken := helpers.CreateAccount(t, app, "organizer")

	eventID := helpers.MustCreateEvent(t, app, ownerToken, "Owned Event", 10)

	payload, err := json.Marshal(map[string]any{"title": "Hijacked"})
	require.NoError(t, err)

	body, statusCode := helpers.API_UpdateEvent(t, app, otherToken, eventID, payload)
	helpers.ResponseErrorCheck(t, app, errmsg.EventNotOwner, body, statusCode)
}

func TestEventsUpdateByAdmin(t *testing.T) {
	_, ownerToken := helpers.CreateAccount(t, app, "organizer")
	_, adminToken := helpers.CreateAccount(t, app, "admin")

	eventID := helpers.MustCreateEvent(t, app, ownerToken, "Admin Target", 10)

	payload, err := json.Marshal(map[string]any{"title": "Admin Touched"})
	require.NoError(t, err)

	_, statusCode := helpers.API_UpdateEvent(t, app, adminToken, eventID, payload)
	require.Equal(t, http.StatusOK, statusCode)
}

func TestEventsUpdateCapacityBelowAttendees(t *testing.T) {
	_, organizerToken := helpers.CreateAccount(t, app, "organizer")
	_, userToken := helpers.CreateAccount(t, app, "user")

	_, secondToken := helpers.CreateAccount(t, app, "user")

	eventID := helpers.MustCreateEvent(t, app, organizerToken, "Shrink Me", 5)

	_, statusCode := helpers.API_RegisterForEvent(t, app, userToken, eventID)
	require.Equal(t, http.StatusOK, statusCode)
	_, statusCode = helpers.API_RegisterForEvent(t, app, secondToken, eventID)
	require.Equal(t, http.StatusOK, statusCode)

	payload, err := json.Marshal(map[string]any{"capacity": 1})
	require.NoError(t, err)

	body, statusCode := helpers.API_UpdateEvent(t, app, organizerToken, eventID, payload)
	helpers.ResponseErrorCheck(t, app, errmsg.EventCapacityBelowAttendees, body, statusCode)
}

func TestEventsUpdateExpiredToken(t *testing.T) {
	organizerID, token := helpers.CreateAccount(t, app, "organizer")
	eventID := helpers.MustCreateEvent(t, app, token, "Expiry Target", 10)

	expired := helpers.ExpiredToken(t, organizerID, "organizer")

	payload, err := json.Marshal(map[string]any{"title": "Should Not Stick"})
	require.NoError(t, err)

	body, statusCode := helpers.API_UpdateEvent(t, app, expired, eventID, payload)
	helpers.ResponseErrorCheck(t, app, errmsg.AuthInvalidToken, body, statusCode)

	// the event is untouched
	getBody, statusCode := helpers.API_GetEvent(t, app, eventID)
	require.Equal(t, http.StatusOK, statusCode)
	require.Contains(t, string(getBody), "Expiry Target")
}

func TestEventsDeleteByNonOwner(t *testing.T) {
	_, ownerToken := helpers.CreateAccount(t, app, "organizer")
	_, otherToken := helpers.CreateAccount(t, app, "organizer")

	eventID := helpers.MustCreateEvent(t, app, ownerToken, "Keep Me", 10)

	body, statusCode := helpers.API_DeleteEvent(t, app, otherToken, eventID)
	helpers.ResponseErrorCheck(t, app, errmsg.EventNotOwner, body, statusCode)

	_, statusCode = helpers.API_GetEvent(t, app, eventID)
	require.Equal(t, http.StatusOK, statusCode)
}

func TestEventsDeleteByOwner(t *testing.T) {
	_, token := helpers.CreateAccount(t, app, "organizer")
	eventID := helpers.MustCreateEvent(t, app, token, "Remove Me", 10)

	_, statusCode := helpers.API_DeleteEvent(t, app, token, eventID)
	require.Equal(t, http.StatusNoContent, statusCode)

	body, statusCode := helpers.API_GetEvent(t, app, eventID)
	helpers.ResponseErrorCheck(t, app, errmsg.EventNotFound, body, statusCode)
}
