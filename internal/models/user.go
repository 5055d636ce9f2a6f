package models

import (
	"context"
	"errors"
	"time"

	"eventia/internal/db"
	"eventia/internal/env"
	"eventia/internal/errmsg"

	sj "github.com/brianvoe/sjwt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// CanManageEvents reports whether the role may create or edit events.
func (r Role) CanManageEvents() bool {
	return r == RoleOrganizer || r == RoleAdmin
}

type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Password     string    `bson:"password" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	ProfileImage string    `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// UserSummary is the public projection embedded in event responses.
type UserSummary struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// tokenClaims is what goes into the signed token. Role is carried for
// convenience only; the middleware re-reads the user record on every request.
type tokenClaims struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (u *User) GenToken() string {
	claims, _ := sj.ToClaims(tokenClaims{ID: u.ID, Role: u.Role})
	claims.SetExpiresAt(time.Now().Add(30 * 24 * time.Hour))

	token := claims.Generate(env.JWT_SECRET)
	return token
}

// ParseToken verifies the signature and expiry and returns the token subject.
// It fails closed: any malformed or unverifiable token yields an error.
func ParseToken(token string) (string, error) {
	if !sj.Verify(token, env.JWT_SECRET) {
		return "", errors.New("token verification failed")
	}

	claims, err := sj.Parse(token)
	if err != nil {
		return "", err
	}

	if err := claims.Validate(); err != nil {
		return "", err
	}

	var tc tokenClaims
	claims.ToStruct(&tc)
	if tc.ID == "" {
		return "", errors.New("token carries no subject")
	}

	return tc.ID, nil
}

func CreateUser(ctx context.Context, user User) errmsg.StatusError {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err := db.Users.InsertOne(ctx, user)
	if err != nil {
		return errmsg.InternalServerError(err)
	}

	return errmsg.EmptyStatusError
}

func GetUserByID(ctx context.Context, id string) (User, errmsg.StatusError) {
	var user User
	err := db.Users.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, errmsg.UserNotExists
		}
		return user, errmsg.InternalServerError(err)
	}

	return user, errmsg.EmptyStatusError
}

func GetUserByEmail(ctx context.Context, email string) (User, errmsg.StatusError) {
	var user User
	err := db.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, errmsg.UserNotExists
		}
		return user, errmsg.InternalServerError(err)
	}

	return user, errmsg.EmptyStatusError
}

func UpdateUser(ctx context.Context, user User) errmsg.StatusError {
	_, err := db.Users.UpdateOne(ctx, bson.M{"id": user.ID}, bson.M{
		"$set": bson.M{
			"name":         user.Name,
			"email":        user.Email,
			"password":     user.Password,
			"profileImage": user.ProfileImage,
		},
	})
	if err != nil {
		return errmsg.InternalServerError(err)
	}

	return errmsg.EmptyStatusError
}

// GetUserSummaries resolves a set of user ids to their public projections.
func GetUserSummaries(ctx context.Context, ids []string) (map[string]UserSummary, error) {
	summaries := make(map[string]UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := db.Users.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var users []User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	for _, u := range users {
		summaries[u.ID] = u.Summary()
	}

	return summaries, nil
}
