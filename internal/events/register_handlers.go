package events

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"eventia/internal/auditlog"
	"eventia/internal/auth"
	"eventia/internal/db"
	"eventia/internal/errmsg"
	"eventia/internal/models"
	"eventia/internal/utils"
	"eventia/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type capacityStatus struct {
	Capacity       int  `json:"capacity"`
	AttendeesCount int  `json:"attendeesCount"`
	AvailableSeats int  `json:"availableSeats"`
	IsHouseFull    bool `json:"isHouseFull"`
}

func capacityOf(event models.Event) capacityStatus {
	return capacityStatus{
		Capacity:       event.Capacity,
		AttendeesCount: len(event.Attendees),
		AvailableSeats: event.AvailableSeats(),
		IsHouseFull:    event.IsHouseFull(),
	}
}

func capacityCacheKey(eventID string) string {
	return "capacity:" + eventID
}

// invalidateCapacity drops the cached snapshot after any attendance or
// capacity mutation. Cache trouble is never a request failure.
func invalidateCapacity(eventID string) {
	if db.RDB == nil {
		return
	}
	_ = db.CacheDel(capacityCacheKey(eventID))
}

// registerHandler books one seat for the caller. The seat check and the
// attendee append happen as one conditional write, so the capacity bound
// holds under concurrent registrations.
// @Summary Register for event
// @Tags Events
// @Security UserAuth
// @Produce json
// @Param id path string true "Event identifier"
// @Success 200 {object} models.Event
// @Failure 400 {object} errmsg._EventAlreadyRegistered
// @Failure 400 {object} errmsg._EventHouseFull
// @Failure 401 {object} errmsg._AuthNoToken
// @Failure 403 {object} errmsg._AuthForbidden
// @Failure 404 {object} errmsg._EventNotFound
// @Router /api/events/{id}/register [post]
func registerHandler(c fiber.Ctx) error {
	user := auth.CurrentUser(c)

	// organizers and admins manage events, they do not consume seats
	if user.Role != models.RoleUser {
		return utils.Fail(c, errmsg.EventOrganizerRegistration)
	}

	event, serr := models.RegisterAttendee(context.Background(), c.Params("id"), user.ID)
	if serr == errmsg.EventHouseFull {
		return c.Status(serr.StatusCode).JSON(fiber.Map{
			"status":      utils.StatusFail,
			"message":     serr.Message,
			"isHouseFull": true,
		})
	}
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	invalidateCapacity(event.ID)

	if auditlog.Em != nil {
		auditlog.Em.UserRegistered(event, user.ID)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":  utils.StatusSuccess,
		"message": "successfully registered for the event",
		"data": fiber.Map{
			"event":          event,
			"availableSeats": event.AvailableSeats(),
			"isHouseFull":    event.IsHouseFull(),
		},
	})
}

// capacityHandler reports seat availability, served from the Redis snapshot
// when one is present.
// @Summary Event capacity status
// @Tags Events
// @Produce json
// @Param id path string true "Event identifier"
// @Success 200 {object} capacityStatus
// @Failure 404 {object} errmsg._EventNotFound
// @Router /api/events/{id}/capacity [get]
func capacityHandler(c fiber.Ctx) error {
	eventID := c.Params("id")

	if db.RDB != nil {
		if cached, err := db.CacheGetBytes(capacityCacheKey(eventID)); err == nil {
			var status capacityStatus
			if err := json.Unmarshal(cached, &status); err == nil {
				return utils.Success(c, http.StatusOK, status)
			}
		}
	}

	event, serr := models.GetEventByID(context.Background(), eventID)
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	status := capacityOf(event)

	if db.RDB != nil {
		if encoded, err := json.Marshal(status); err == nil {
			_ = db.CacheSetBytes(capacityCacheKey(eventID), encoded)
		}
	}

	return utils.Success(c, http.StatusOK, status)
}

// liveHandler streams capacity snapshots over a WebSocket until the client
// hangs up or the event disappears.
// @Summary Live capacity stream
// @Tags Events
// @Param id path string true "Event identifier"
// @Router /api/events/{id}/live [get]
func liveHandler(c fiber.Ctx) error {
	eventID := c.Params("id")

	return ws.StreamWebSocket(c, func(ctx context.Context, writer *ws.SnapshotWriter) error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		var last capacityStatus
		first := true

		for {
			event, serr := models.GetEventByID(ctx, eventID)
			if serr != errmsg.EmptyStatusError {
				writer.WriteStatus("error", serr.Message)
				return nil
			}

			status := capacityOf(event)
			if first || status != last {
				if err := writer.Send(status); err != nil {
					return err
				}
				last = status
				first = false
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	})
}
