package events

import (
	"context"
	"net/http"

	"eventia/internal/auditlog"
	"eventia/internal/auth"
	"eventia/internal/errmsg"
	"eventia/internal/models"
	"eventia/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// logsHandler returns the audit trail of one event, newest first.
// Owner or admin only.
// @Summary Event audit log
// @Tags Events
// @Security UserAuth
// @Produce json
// @Param id path string true "Event identifier"
// @Success 200 {object} models.AuditLogEntry
// @Failure 401 {object} errmsg._AuthNoToken
// @Failure 403 {object} errmsg._EventNotOwner
// @Failure 404 {object} errmsg._EventNotFound
// @Router /api/events/{id}/logs [get]
func logsHandler(c fiber.Ctx) error {
	event, serr := models.GetEventByID(context.Background(), c.Params("id"))
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	user := auth.CurrentUser(c)
	if !auth.CanManage(user, event) {
		return utils.Fail(c, errmsg.EventNotOwner)
	}

	entries, err := auditlog.ForEvent(context.Background(), event.ID)
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	return utils.Success(c, http.StatusOK, fiber.Map{
		"logs": entries,
	})
}
