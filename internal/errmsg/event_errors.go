package errmsg

import "net/http"

var (
	EventNotFound = NewStatusError(
		http.StatusNotFound,
		"event not found",
	)
	EventInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"title, description, date, location, category and a positive capacity must be provided",
	)
	EventInvalidUpdate = NewStatusError(
		http.StatusBadRequest,
		"invalid event update",
	)
	EventCapacityBelowAttendees = NewStatusError(
		http.StatusBadRequest,
		"capacity cannot be lower than the current number of attendees",
	)
	EventNotOwner = NewStatusError(
		http.StatusForbidden,
		"you are not authorized to manage this event",
	)
	EventOrganizerRegistration = NewStatusError(
		http.StatusForbidden,
		"organizers cannot register for events",
	)
	EventAlreadyRegistered = NewStatusError(
		http.StatusBadRequest,
		"you are already registered for this event",
	)
	EventHouseFull = NewStatusError(
		http.StatusBadRequest,
		"this event is now full and not accepting new registrations",
	)
)

type _EventNotFound struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"event not found"`
}

type _EventInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"title, description, date, location, category and a positive capacity must be provided"`
}

type _EventNotOwner struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"you are not authorized to manage this event"`
}

type _EventAlreadyRegistered struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"you are already registered for this event"`
}

type _EventHouseFull struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"this event is now full and not accepting new registrations"`
}
