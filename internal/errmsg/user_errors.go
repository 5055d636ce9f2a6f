package errmsg

import "net/http"

var (
	UserNotExists = NewStatusError(
		http.StatusNotFound,
		"user not found",
	)
	UserAlreadyExists = NewStatusError(
		http.StatusBadRequest,
		"a user with this email already exists",
	)
	UserInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"name, email and password must be provided",
	)
	UserInvalidRole = NewStatusError(
		http.StatusBadRequest,
		"role must be one of user, organizer or admin",
	)
	UserWrongCredentials = NewStatusError(
		http.StatusUnauthorized,
		"invalid email or password",
	)
)

type _UserNotExists struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"user not found"`
}

type _UserAlreadyExists struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"a user with this email already exists"`
}

type _UserInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"name, email and password must be provided"`
}

type _UserWrongCredentials struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"invalid email or password"`
}
