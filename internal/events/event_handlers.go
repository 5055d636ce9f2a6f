package events

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"eventia/internal/auditlog"
	"eventia/internal/auth"
	"eventia/internal/errmsg"
	"eventia/internal/models"
	"eventia/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type eventSummary struct {
	models.Event
	OrganizerInfo models.UserSummary `json:"organizerInfo"`
}

type eventDetail struct {
	models.Event
	OrganizerInfo  models.UserSummary   `json:"organizerInfo"`
	AttendeesInfo  []models.UserSummary `json:"attendeesInfo"`
	AvailableSeats int                  `json:"availableSeats"`
	IsHouseFull    bool                 `json:"isHouseFull"`
}

func withOrganizers(ctx context.Context, events []models.Event) ([]eventSummary, error) {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.Organizer)
	}

	organizers, err := models.GetUserSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]eventSummary, 0, len(events))
	for _, e := range events {
		out = append(out, eventSummary{
			Event:         e,
			OrganizerInfo: organizers[e.Organizer],
		})
	}

	return out, nil
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// listHandler returns the public browse listing.
// @Summary List events
// @Description Lists events, optionally narrowed by category, location substring and a date lower bound.
// @Tags Events
// @Produce json
// @Param category query string false "Exact category"
// @Param location query string false "Location substring, case-insensitive"
// @Param date query string false "Only events on or after this date"
// @Success 200 {object} listEventsResponse
// @Failure 500 {object} errmsg._InternalServerError
// @Router /api/events [get]
func listHandler(c fiber.Ctx) error {
	filter := models.EventFilter{
		Category: strings.TrimSpace(c.Query("category")),
		Location: strings.TrimSpace(c.Query("location")),
	}

	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		from, ok := parseDate(raw)
		if !ok {
			return utils.Fail(c, errmsg.EventInvalidPayload)
		}
		filter.DateFrom = from
	}

	return listEvents(c, filter)
}

// mineHandler lists the caller's own events. Requires a verified organizer
// or admin identity; an unverified Authorization header is never enough.
// @Summary List own events
// @Tags Events
// @Security UserAuth
// @Produce json
// @Success 200 {object} listEventsResponse
// @Failure 401 {object} errmsg._AuthNoToken
// @Failure 403 {object} errmsg._AuthForbidden
// @Router /api/events/mine [get]
func mineHandler(c fiber.Ctx) error {
	user := auth.CurrentUser(c)

	return listEvents(c, models.EventFilter{Organizer: user.ID})
}

type listEventsResponse struct {
	Results int            `json:"results"`
	Events  []eventSummary `json:"events"`
}

func listEvents(c fiber.Ctx, filter models.EventFilter) error {
	events, err := models.ListEvents(context.Background(), filter)
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	summaries, err := withOrganizers(context.Background(), events)
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	return utils.Success(c, http.StatusOK, listEventsResponse{
		Results: len(summaries),
		Events:  summaries,
	})
}

type createEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	TicketPrice float64  `json:"ticketPrice"`
	Capacity    int      `json:"capacity"`
}

// createHandler creates an event owned by the caller.
// @Summary Create event
// @Tags Events
// @Security UserAuth
// @Accept json
// @Produce json
// @Param payload body createEventRequest true "Event details"
// @Success 201 {object} models.Event
// @Failure 400 {object} errmsg._EventInvalidPayload
// @Failure 401 {object} errmsg._AuthNoToken
// @Failure 403 {object} errmsg._AuthForbidden
// @Router /api/events [post]
func createHandler(c fiber.Ctx) error {
	var req createEventRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.Fail(c, errmsg.EventInvalidPayload)
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)
	req.Category = strings.TrimSpace(req.Category)

	if req.Title == "" || req.Description == "" || req.Location == "" ||
		req.Category == "" || req.Capacity <= 0 {
		return utils.Fail(c, errmsg.EventInvalidPayload)
	}

	date, ok := parseDate(strings.TrimSpace(req.Date))
	if !ok {
		return utils.Fail(c, errmsg.EventInvalidPayload)
	}

	user := auth.CurrentUser(c)

	event := models.Event{
		ID:          primitive.NewObjectID().Hex(),
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Location:    req.Location,
		Category:    req.Category,
		Image:       req.Image,
		Images:      req.Images,
		TicketPrice: req.TicketPrice,
		Capacity:    req.Capacity,
		Organizer:   user.ID,
		Attendees:   []string{},
	}

	if serr := models.CreateEvent(context.Background(), event); serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	created, serr := models.GetEventByID(context.Background(), event.ID)
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	if auditlog.Em != nil {
		auditlog.Em.EventCreated(created)
	}

	return utils.Success(c, http.StatusCreated, fiber.Map{
		"event": created,
	})
}

// getHandler returns one event with organizer and attendee summaries.
// @Summary Get event
// @Tags Events
// @Produce json
// @Param id path string true "Event identifier"
// @Success 200 {object} models.Event
// @Failure 404 {object} errmsg._EventNotFound
// @Router /api/events/{id} [get]
func getHandler(c fiber.Ctx) error {
	event, serr := models.GetEventByID(context.Background(), c.Params("id"))
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	organizers, err := models.GetUserSummaries(context.Background(), []string{event.Organizer})
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	attendees, err := models.GetUserSummaries(context.Background(), event.Attendees)
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	attendeesInfo := make([]models.UserSummary, 0, len(event.Attendees))
	for _, id := range event.Attendees {
		if summary, ok := attendees[id]; ok {
			attendeesInfo = append(attendeesInfo, summary)
		}
	}

	return utils.Success(c, http.StatusOK, fiber.Map{
		"event": eventDetail{
			Event:          event,
			OrganizerInfo:  organizers[event.Organizer],
			AttendeesInfo:  attendeesInfo,
			AvailableSeats: event.AvailableSeats(),
			IsHouseFull:    event.IsHouseFull(),
		},
	})
}

// updateHandler patches an event. Only the owning organizer or an admin may
// do so; organizer and attendees are immutable.
// @Summary Update event
// @Tags Events
// @Security UserAuth
// @Accept json
// @Produce json
// @Param id path string true "Event identifier"
// @Param payload body models.EventUpdate true "Fields to change"
// @Success 200 {object} models.Event
// @Failure 400 {object} errmsg._EventInvalidPayload
// @Failure 403 {object} errmsg._EventNotOwner
// @Failure 404 {object} errmsg._EventNotFound
// @Router /api/events/{id} [patch]
func updateHandler(c fiber.Ctx) error {
	event, serr := models.GetEventByID(context.Background(), c.Params("id"))
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	user := auth.CurrentUser(c)
	if !auth.CanManage(user, event) {
		return utils.Fail(c, errmsg.EventNotOwner)
	}

	var update models.EventUpdate
	if err := json.Unmarshal(c.Body(), &update); err != nil {
		return utils.Fail(c, errmsg.EventInvalidUpdate)
	}

	if update.Capacity != nil && *update.Capacity <= 0 {
		return utils.Fail(c, errmsg.EventInvalidUpdate)
	}

	updated, serr := models.UpdateEvent(context.Background(), event, update)
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	invalidateCapacity(event.ID)

	return utils.Success(c, http.StatusOK, fiber.Map{
		"event": updated,
	})
}

// deleteHandler removes an event. Owner or admin only.
// @Summary Delete event
// @Tags Events
// @Security UserAuth
// @Param id path string true "Event identifier"
// @Success 204
// @Failure 403 {object} errmsg._EventNotOwner
// @Failure 404 {object} errmsg._EventNotFound
// @Router /api/events/{id} [delete]
func deleteHandler(c fiber.Ctx) error {
	event, serr := models.GetEventByID(context.Background(), c.Params("id"))
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	user := auth.CurrentUser(c)
	if !auth.CanManage(user, event) {
		return utils.Fail(c, errmsg.EventNotOwner)
	}

	if serr := models.DeleteEvent(context.Background(), event.ID); serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	invalidateCapacity(event.ID)

	return c.SendStatus(http.StatusNoContent)
}
