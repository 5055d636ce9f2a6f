package users

import (
	"encoding/json"
	"net/http"
	"testing"

	"eventia/internal/errmsg"
	"eventia/test/helpers"

	"github.com/stretchr/testify/require"
)

func TestUsersPing(t *testing.T) {
	body, statusCode := helpers.RequestRunner(t, app, "GET", "/api/users/ping", nil, nil)
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, "PONG", string(body))
}

func TestUsersRegisterSuccess(t *testing.T) {
	email := helpers.UniqueEmail("newuser")
	body, statusCode := helpers.API_UsersRegister(t, app, "New User", email, "secret-pass", "")
	require.Equal(t, http.StatusCreated, statusCode)

	var envelope struct {
		Status string                 `json:"status"`
		Data   helpers.AccountPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))

	require.Equal(t, "success", envelope.Status)
	require.NotEmpty(t, envelope.Data.Token)
	require.Equal(t, email, envelope.Data.User.Email)
	require.Equal(t, "user", envelope.Data.User.Role)

	// the password hash must never leak into a response
	require.NotContains(t, string(body), "password")
}

func TestUsersRegisterDuplicateEmail(t *testing.T) {
	email := helpers.UniqueEmail("dup")
	_, statusCode := helpers.API_UsersRegister(t, app, "First", email, "secret-pass", "")
	require.Equal(t, http.StatusCreated, statusCode)

	body, statusCode := helpers.API_UsersRegister(t, app, "Second", email, "secret-pass", "")
	helpers.ResponseErrorCheck(t, app, errmsg.UserAlreadyExists, body, statusCode)
}

func TestUsersRegisterInvalidPayload(t *testing.T) {
	body, statusCode := helpers.API_UsersRegister(t, app, "", "", "", "")
	helpers.ResponseErrorCheck(t, app, errmsg.UserInvalidPayload, body, statusCode)
}

func TestUsersRegisterInvalidRole(t *testing.T) {
	email := helpers.UniqueEmail("badrole")
	body, statusCode := helpers.API_UsersRegister(t, app, "Bad Role", email, "secret-pass", "superuser")
	helpers.ResponseErrorCheck(t, app, errmsg.UserInvalidRole, body, statusCode)
}

func TestUsersLoginSuccess(t *testing.T) {
	email := helpers.UniqueEmail("login")
	_, statusCode := helpers.API_UsersRegister(t, app, "Login User", email, "secret-pass", "")
	require.Equal(t, http.StatusCreated, statusCode)

	body, statusCode := helpers.API_UsersLogin(t, app, email, "secret-pass")
	require.Equal(t, http.StatusOK, statusCode)

	var envelope struct {
		Status string                 `json:"status"`
		Data   helpers.AccountPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, "success", envelope.Status)
	require.NotEmpty(t, envelope.Data.Token)
}

func TestUsersLoginWrongPassword(t *testing.T) {
	email := helpers.UniqueEmail("wrongpass")
	_, statusCode := helpers.API_UsersRegister(t, app, "Wrong Pass", email, "secret-pass", "")
	require.Equal(t, http.StatusCreated, statusCode)

	body, statusCode := helpers.API_UsersLogin(t, app, email, "not-the-password")
	helpers.ResponseErrorCheck(t, app, errmsg.UserWrongCredentials, body, statusCode)
}

func TestUsersLoginUnknownEmail(t *testing.T) {
	body, statusCode := helpers.API_UsersLogin(t, app, helpers.UniqueEmail("ghost"), "whatever")
	helpers.ResponseErrorCheck(t, app, errmsg.UserWrongCredentials, body, statusCode)
}
