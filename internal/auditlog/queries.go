package auditlog

import (
	"context"

	"eventia/internal/db"
	"eventia/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var newestFirst = options.Find().SetSort(bson.M{"timestamp": -1})

func find(ctx context.Context, filter bson.M) ([]models.AuditLogEntry, error) {
	cursor, err := db.AuditLogs.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}

	var entries []models.AuditLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.AuditLogEntry{}
	}

	return entries, nil
}

// ForEvent returns every entry recorded against one event, newest first.
func ForEvent(ctx context.Context, eventID string) ([]models.AuditLogEntry, error) {
	return find(ctx, bson.M{"eventId": eventID})
}

// RegistrationsForUser returns the events a user registered for, newest first.
func RegistrationsForUser(ctx context.Context, userID string) ([]models.AuditLogEntry, error) {
	return find(ctx, bson.M{
		"userId": userID,
		"action": models.ActionUserRegistered,
	})
}

// CreationsForOrganizer returns the creation trail of an organizer, newest first.
func CreationsForOrganizer(ctx context.Context, organizerID string) ([]models.AuditLogEntry, error) {
	return find(ctx, bson.M{
		"organizerId": organizerID,
		"action":      models.ActionEventCreated,
	})
}
