package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"eventia/internal/auth"
	"eventia/internal/errmsg"
	"eventia/internal/models"
	"eventia/internal/utils"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

// getProfileHandler returns the caller's profile with organized events and
// current registrations.
// @Summary Get profile
// @Tags Users
// @Security UserAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} errmsg._AuthNoToken
// @Router /api/users/profile [get]
func getProfileHandler(c fiber.Ctx) error {
	user := auth.CurrentUser(c)

	organized, err := models.ListEvents(context.Background(), models.EventFilter{
		Organizer: user.ID,
	})
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	registered, err := models.ListEventsAttendedBy(context.Background(), user.ID)
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	return utils.Success(c, http.StatusOK, fiber.Map{
		"user":             user,
		"events":           organized,
		"registeredEvents": registered,
	})
}

type updateProfileRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profileImage"`
}

// updateProfileHandler patches the caller's own record and issues a fresh
// token. Role is not touchable here.
// @Summary Update profile
// @Tags Users
// @Security UserAuth
// @Accept json
// @Produce json
// @Param payload body updateProfileRequest true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} errmsg._UserInvalidPayload
// @Failure 401 {object} errmsg._AuthNoToken
// @Router /api/users/profile [patch]
func updateProfileHandler(c fiber.Ctx) error {
	var req updateProfileRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.Fail(c, errmsg.UserInvalidPayload)
	}

	current := auth.CurrentUser(c)

	// re-read for the stored password hash, locals are scrubbed
	user, serr := models.GetUserByID(context.Background(), current.ID)
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" && email != user.Email {
		if _, serr := models.GetUserByEmail(context.Background(), email); serr == errmsg.EmptyStatusError {
			return utils.Fail(c, errmsg.UserAlreadyExists)
		}
		user.Email = email
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return utils.Fail(c, errmsg.InternalServerError(err))
		}
		user.Password = string(hash)
	}

	if serr := models.UpdateUser(context.Background(), user); serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	token := user.GenToken()
	user.Password = ""

	return utils.Success(c, http.StatusOK, fiber.Map{
		"user":  user,
		"token": token,
	})
}
