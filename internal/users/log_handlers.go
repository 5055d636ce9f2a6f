package users

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

// logsHandler returns the caller's audit trail: registrations for everyone,
// plus the creation trail when the caller organizes events.
// @Summary Own audit log
// @Tags Users
// @Security UserAuth
// @Produce json
// @Success 200 {object} models.AuditLogEntry
// @Failure 401 {object} errmsg._AuthNoToken
// @Router /api/users/logs [get]
func logsHandler(c fiber.Ctx) error {
	user := auth.CurrentUser(c)

	registrations, err := auditlog.RegistrationsForUser(context.Background(), user.ID)
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	createdEvents := []models.AuditLogEntry{}
	if user.Role.CanManageEvents() {
		createdEvents, err = auditlog.CreationsForOrganizer(context.Background(), user.ID)
		if err != nil {
			return utils.Fail(c, errmsg.InternalServerError(err))
		}
	}

	return utils.Success(c, http.StatusOK, fiber.Map{
		"registrations": registrations,
		"createdEvents": createdEvents,
	})
}
