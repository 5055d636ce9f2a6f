package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

var emailSeq atomic.Int64

// UniqueEmail returns an address no earlier test run has used, so suites can
// rerun against a persistent database.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d-%d@example.com", prefix, time.Now().UnixNano(), emailSeq.Add(1))
}

func API_UsersRegister(
	t *testing.T,
	app *fiber.App,
	name string,
	email string,
	password string,
	role string,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/api/users/register",
		sendBytes,
		nil,
	)
}

func API_UsersLogin(
	t *testing.T,
	app *fiber.App,
	email string,
	password string,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    email,
		Password: password,
	}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/api/users/login",
		sendBytes,
		nil,
	)
}

func API_UsersProfile(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"GET",
		"/api/users/profile",
		nil,
		&token,
	)
}

func API_UsersUpdateProfile(
	t *testing.T,
	app *fiber.App,
	token string,
	sendBytes []byte,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"PATCH",
		"/api/users/profile",
		sendBytes,
		&token,
	)
}

func API_UsersLogs(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"GET",
		"/api/users/logs",
		nil,
		&token,
	)
}

type AccountPayload struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	Token string `json:"token"`
}

// CreateAccount registers a fresh account with the given role and returns its
// id and token.
func CreateAccount(t *testing.T, app *fiber.App, role string) (id string, token string) {
	email := UniqueEmail(role)
	body, statusCode := API_UsersRegister(t, app, "Test "+role, email, "secret-pass", role)
	require.Equal(t, http.StatusCreated, statusCode)

	var envelope struct {
		Status string         `json:"status"`
		Data   AccountPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.Equal(t, "success", envelope.Status)
	require.NotEmpty(t, envelope.Data.User.ID)
	require.NotEmpty(t, envelope.Data.Token)

	return envelope.Data.User.ID, envelope.Data.Token
}
