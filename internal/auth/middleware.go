package auth

import (
	"context"
	"strings"

	"eventia/internal/errmsg"
	"eventia/internal/models"
	"eventia/internal/utils"

	"github.com/gofiber/fiber/v3"
)

const userLocal = "user"

// Protect resolves the caller from the bearer token. The token only names a
// subject; the user record is re-fetched so that tokens of deleted accounts
// stop working immediately.
func Protect(c fiber.Ctx) error {
	var token string

	authHeader := c.Get("Authorization")

	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer") {
		tokens := strings.Fields(authHeader)
		if len(tokens) == 2 {
			token = tokens[1]
		}
	}

	if token == "" {
		return utils.Fail(c, errmsg.AuthNoToken)
	}

	userID, err := models.ParseToken(token)
	if err != nil {
		return utils.Fail(c, errmsg.AuthInvalidToken)
	}

	user, serr := models.GetUserByID(context.Background(), userID)
	if serr != errmsg.EmptyStatusError {
		return utils.Fail(c, errmsg.AuthUserGone)
	}

	user.Password = ""
	utils.SetLocals(c, userLocal, user)

	return c.Next()
}

// RequireRoles allows the request through only when the resolved user's
// stored role is on the allow-list. Must run after Protect.
func RequireRoles(roles ...models.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		user := CurrentUser(c)

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return utils.Fail(c, errmsg.AuthForbidden)
	}
}

func CurrentUser(c fiber.Ctx) models.User {
	var user models.User
	utils.GetLocals(c, userLocal, &user)
	return user
}

// CanManage reports whether the user may mutate or inspect the event:
// its organizer, or an admin.
func CanManage(user models.User, event models.Event) bool {
	return user.Role == models.RoleAdmin || user.ID == event.Organizer
}
