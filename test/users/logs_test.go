package users

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"eventia/internal/errmsg"
	"eventia/test/helpers"

	"github.com/stretchr/testify/require"
)

type logEntry struct {
	EventID     string `json:"eventId"`
	UserID      string `json:"userId"`
	OrganizerID string `json:"organizerId"`
	Action      string `json:"action"`
}

type userLogs struct {
	Registrations []logEntry `json:"registrations"`
	CreatedEvents []logEntry `json:"createdEvents"`
}

func fetchUserLogs(t *testing.T, token string) userLogs {
	body, statusCode := helpers.API_UsersLogs(t, app, token)
	require.Equal(t, http.StatusOK, statusCode)

	var envelope struct {
		Data userLogs `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	return envelope.Data
}

func TestUsersLogsRequiresToken(t *testing.T) {
	body, statusCode := helpers.RequestRunner(t, app, "GET", "/api/users/logs", nil, nil)
	helpers.ResponseErrorCheck(t, app, errmsg.AuthNoToken, body, statusCode)
}

func TestUsersLogsRecordCreationAndRegistration(t *testing.T) {
	organizerID, organizerToken := helpers.CreateAccount(t, app, "organizer")
	userID, userToken := helpers.CreateAccount(t, app, "user")

	eventID := helpers.MustCreateEvent(t, app, organizerToken, "Logged Event", 50)

	_, statusCode := helpers.API_RegisterForEvent(t, app, userToken, eventID)
	require.Equal(t, http.StatusOK, statusCode)

	// audit writes are asynchronous, give the emitter a flush cycle
	time.Sleep(500 * time.Millisecond)

	organizerLogs := fetchUserLogs(t, organizerToken)
	foundCreation := false
	for _, entry := range organizerLogs.CreatedEvents {
		if entry.EventID == eventID {
			foundCreation = true
			require.Equal(t, "event_created", entry.Action)
			require.Equal(t, organizerID, entry.OrganizerID)
		}
	}
	require.True(t, foundCreation)

	attendeeLogs := fetchUserLogs(t, userToken)
	foundRegistration := false
	for _, entry := range attendeeLogs.Registrations {
		if entry.EventID == eventID {
			foundRegistration = true
			require.Equal(t, "user_registered", entry.Action)
			require.Equal(t, userID, entry.UserID)
			require.Equal(t, organizerID, entry.OrganizerID)
		}
	}
	require.True(t, foundRegistration)

	// plain users never see a creation trail
	require.Empty(t, attendeeLogs.CreatedEvents)
}
