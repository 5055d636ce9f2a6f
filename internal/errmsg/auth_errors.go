package errmsg

import "net/http"

var (
	AuthNoToken = NewStatusError(
		http.StatusUnauthorized,
		"you are not logged in, please log in to get access",
	)
	AuthInvalidToken = NewStatusError(
		http.StatusUnauthorized,
		"invalid or expired token, please log in again",
	)
	AuthUserGone = NewStatusError(
		http.StatusUnauthorized,
		"the user belonging to this token no longer exists",
	)
	AuthForbidden = NewStatusError(
		http.StatusForbidden,
		"you do not have permission to perform this action",
	)
)

type _AuthNoToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"you are not logged in, please log in to get access"`
}

type _AuthInvalidToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"invalid or expired token, please log in again"`
}

type _AuthForbidden struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"you do not have permission to perform this action"`
}
