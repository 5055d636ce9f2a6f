package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"eventia/internal/errmsg"
	"eventia/internal/models"
	"eventia/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler creates an account and signs it in. The role is fixed at
// registration time; there is no role-change endpoint.
// @Summary Register user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Account details"
// @Success 201 {object} models.User
// @Failure 400 {object} errmsg._UserAlreadyExists
// @Failure 400 {object} errmsg._UserInvalidPayload
// @Router /api/users/register [post]
func registerHandler(c fiber.Ctx) error {
	var req registerRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.Fail(c, errmsg.UserInvalidPayload)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return utils.Fail(c, errmsg.UserInvalidPayload)
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return utils.Fail(c, errmsg.UserInvalidRole)
	}

	_, serr := models.GetUserByEmail(context.Background(), req.Email)
	if serr == errmsg.EmptyStatusError {
		return utils.Fail(c, errmsg.UserAlreadyExists)
	}
	if serr != errmsg.UserNotExists {
		return utils.Fail(c, serr)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.Fail(c, errmsg.InternalServerError(err))
	}

	user := models.User{
		ID:       primitive.NewObjectID().Hex(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}

	if serr := models.CreateUser(context.Background(), user); serr != errmsg.EmptyStatusError {
		return utils.Fail(c, serr)
	}

	token := user.GenToken()
	user.Password = ""

	return utils.Success(c, http.StatusCreated, fiber.Map{
		"user":  user,
		"token": token,
	})
}

// loginHandler exchanges credentials for a token.
// @Summary Login
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} errmsg._UserInvalidPayload
// @Failure 401 {object} errmsg._UserWrongCredentials
// @Router /api/users/login [post]
func loginHandler(c fiber.Ctx) error {
	var req loginRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return utils.Fail(c, errmsg.UserInvalidPayload)
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return utils.Fail(c, errmsg.UserInvalidPayload)
	}

	user, serr := models.GetUserByEmail(context.Background(), req.Email)
	if serr != errmsg.EmptyStatusError {
		// same answer for a missing account and a wrong password
		return utils.Fail(c, errmsg.UserWrongCredentials)
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(req.Password),
	) != nil {
		return utils.Fail(c, errmsg.UserWrongCredentials)
	}

	token := user.GenToken()
	user.Password = ""

	return utils.Success(c, http.StatusOK, fiber.Map{
		"user":  user,
		"token": token,
	})
}
