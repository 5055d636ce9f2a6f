package auditlog

import (
	"context"
	"time"

	"eventia/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Emit stamps and enqueues an entry. When the buffer is saturated it falls
// back to a bounded direct insert; if that fails too the entry is dropped,
// audit writes are best-effort and never surface to the caller.
func (e *Emitter) Emit(entry models.AuditLogEntry) {
	entry.ID = primitive.NewObjectID().Hex()
	entry.Timestamp = time.Now().UTC()

	select {
	case e.buf <- entry:
	default:
		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)
		defer cancel()

		_ = e.InsertOne(ctx, entry)
	}
}

func (e *Emitter) EventCreated(event models.Event) {
	e.Emit(models.AuditLogEntry{
		Action: models.ActionEventCreated,

		EventID:     event.ID,
		UserID:      event.Organizer,
		OrganizerID: event.Organizer,
	})
}

func (e *Emitter) UserRegistered(event models.Event, userID string) {
	e.Emit(models.AuditLogEntry{
		Action: models.ActionUserRegistered,

		EventID:     event.ID,
		UserID:      userID,
		OrganizerID: event.Organizer,
	})
}
