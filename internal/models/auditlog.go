package models

import "time"

type AuditAction string

const (
	ActionEventCreated   AuditAction = "event_created"
	ActionUserRegistered AuditAction = "user_registered"
)

// AuditLogEntry is append-only: written once after the primary mutation
// commits, never updated or deleted.
type AuditLogEntry struct {
	ID          string      `bson:"id" json:"id"`
	EventID     string      `bson:"eventId" json:"eventId"`
	UserID      string      `bson:"userId" json:"userId"`
	OrganizerID string      `bson:"organizerId" json:"organizerId"`
	Action      AuditAction `bson:"action" json:"action"`
	Timestamp   time.Time   `bson:"timestamp" json:"timestamp"`
}
