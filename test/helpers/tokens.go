package helpers

import (
	"testing"
	"time"

	"eventia/internal/env"

	sj "github.com/brianvoe/sjwt"
)

// ExpiredToken signs a token for the given subject that expired an hour ago.
func ExpiredToken(t *testing.T, userID string, role string) string {
	t.Helper()

	claims, _ := sj.ToClaims(struct {
		ID   string `json:"id"`
		Role string `json:"role"`
	}{
		ID:   userID,
		Role: role,
	})
	claims.SetExpiresAt(time.Now().Add(-time.Hour))

	return claims.Generate(env.JWT_SECRET)
}
