package scheduler

import (
	"fmt"
	"time"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/calendar"
)

// ValidationError reports a missing or malformed request field. Nothing was changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NoAvailableSlotError means the slot does not exist or is already booked.
// Available lists the interviewer's free slots of the requested day.
type NoAvailableSlotError struct {
	InterviewerEmail string
	Date             time.Time
	Time             string
	Available        []models.Slot
}

func (e *NoAvailableSlotError) Error() string {
	return fmt.Sprintf(
		"no available slot for %s on %s at %s",
		e.InterviewerEmail, e.Date.Format(calendar.DateLayout), e.Time,
	)
}

func (e *NoAvailableSlotError) Unwrap() error {
	return models.ErrSlotNotFound
}

// RecordError means the slot has been booked but the interview record was
// not stored. The slot stays booked.
type RecordError struct {
	Interviewer models.Interviewer
	Err         error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("slot of %s booked, but interview is not recorded: %s", e.Interviewer.Email, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// NotificationError means the booking is done and recorded, but the
// confirmation was not delivered. Nothing is rolled back.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("interview scheduled, but confirmation is not sent: %s", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
